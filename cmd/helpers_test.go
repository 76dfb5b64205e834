package cmd

import (
	"bytes"
	"testing"

	"github.com/josephgoksu/taskdeck/types"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// resetViper gives a test a clean Viper with the root flags still bound.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	bindFlags()
	t.Cleanup(func() {
		viper.Reset()
		bindFlags()
	})
}

func testConfig() *types.AppConfig {
	return &types.AppConfig{
		Dump:   types.DumpConfig{Path: "/work/.taskdeck/tasks.txt"},
		Export: types.ExportConfig{Format: "json"},
		Log:    types.LogConfig{Level: "warn", CrashDir: "/work/.taskdeck/crash_logs"},
	}
}

func newTestSession(t *testing.T) (*session, *bytes.Buffer, afero.Fs) {
	t.Helper()
	resetViper(t)
	var out bytes.Buffer
	fs := afero.NewMemMapFs()
	return newSession(&out, fs, testConfig()), &out, fs
}
