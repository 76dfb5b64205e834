package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/josephgoksu/taskdeck/types"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/viper"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func isQuiet() bool {
	return viper.GetBool("quiet")
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// splitLine splits a session line into words with POSIX shell quoting rules.
func splitLine(line string) ([]string, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return nil, types.NewInvalidInput("%s", strings.ToLower(err.Error()))
	}
	return words, nil
}
