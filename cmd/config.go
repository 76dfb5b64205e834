package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/taskdeck/types"
	"github.com/spf13/viper"
)

const (
	configName = ".taskdeck"
	configDir  = ".taskdeck"
	envPrefix  = "TASKDECK"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

func setConfigDefaults() {
	viper.SetDefault("dump.path", configDir+"/tasks.txt")
	viper.SetDefault("export.format", "json")
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.crashDir", configDir+"/crash_logs")
}

// InitConfig reads in config file and ENV variables if set.
// Configuration errors are fatal.
func InitConfig() {
	if err := loadConfig(); err != nil {
		HandleFatalError("Configuration error. Run with --verbose for details.", err)
	}
}

// loadConfig resolves .env, environment, config file and defaults into GlobalAppConfig.
func loadConfig() error {
	// A missing .env file is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g., TASKDECK_LOG_LEVEL
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		viper.SetConfigName(configName)
		viper.AddConfigPath(configDir) // ./.taskdeck/.taskdeck.yaml
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			LogError("no config file found, using defaults and environment", nil)
		case cfgFileFlag != "" && os.IsNotExist(err):
			return fmt.Errorf("config file %s not found: %w", cfgFileFlag, err)
		default:
			return fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err)
		}
	} else {
		LogError("using config file "+viper.ConfigFileUsed(), nil)
	}

	setConfigDefaults()

	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validateAppConfig(&cfg); err != nil {
		return err
	}
	GlobalAppConfig = cfg
	return nil
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(cfg *types.AppConfig) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("invalid config value for %s: %q fails %q", e.Namespace(), e.Value(), e.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
