/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"os"

	"github.com/josephgoksu/taskdeck/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// version is the application version.
	version = "0.3.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "taskdeck - an in-memory task manager for the terminal",
	Long: `taskdeck keeps a session's tasks in memory and lets you add, complete,
filter, search and summarize them from an interactive shell, a menu, or a script.

Nothing is persisted unless you ask for it with "save" or "export".`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := GetConfig()
		logger.Setup(cfg.Log.Level, viper.GetBool("verbose"), cmd.ErrOrStderr())
		logger.SetCrashDir(cfg.Log.CrashDir)
		logger.SetVersion(version)
		logger.SetCommand(cmd.CommandPath())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		PrintError(os.Stderr, userMessage(err), err)
		os.Exit(1)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.taskdeck/.taskdeck.yaml, $HOME/.taskdeck.yaml or ./.taskdeck.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "print only essential output")
	rootCmd.PersistentFlags().Bool("json", false, "print machine-readable JSON where supported")

	bindFlags()

	rootCmd.SilenceErrors = true
}

// bindFlags binds the persistent flags to Viper.
func bindFlags() {
	for _, name := range []string{"config", "verbose", "quiet", "json"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}
