/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool         `mapstructure:"verbose"`
	Quiet   bool         `mapstructure:"quiet"`
	JSON    bool         `mapstructure:"json"`
	Config  string       `mapstructure:"config"`
	Dump    DumpConfig   `mapstructure:"dump" validate:"required"`
	Export  ExportConfig `mapstructure:"export" validate:"required"`
	Log     LogConfig    `mapstructure:"log" validate:"required"`
}

// DumpConfig controls where the plain-text task dump is written.
type DumpConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// ExportConfig holds defaults for structured snapshots.
type ExportConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=json yaml yml toml"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level    string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	CrashDir string `mapstructure:"crashDir" validate:"required"`
}
