package conf

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds all the configuration for gozones.
type Configuration struct {
	DB struct {
		Driver    string `mapstructure:"driver" json:"driver"`
		ConnURL   string `mapstructure:"url" json:"url"`
		Namespace string `mapstructure:"namespace" json:"namespace"`
	} `mapstructure:"db" json:"db"`

	Log struct {
		Level string `mapstructure:"level" json:"level"`
		JSON  bool   `mapstructure:"json" json:"json"`
	} `mapstructure:"log" json:"log"`
}

// Load will construct the config from the file `config.json` and the
// environment, after loading any `.env` file in the working directory.
func Load(configFile string) (*Configuration, error) {
	godotenv.Load()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./")              // ./config.[json | toml]
		viper.AddConfigPath("$HOME/.gozones/") // ~/.gozones/config.[json | toml]
	}

	viper.SetEnvPrefix("GOZONES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config := new(Configuration)

	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	return handleNested(config), nil
}

// This is supppper sad. It is b/c the marshal function doesn't work on nested
// values. The overrides work, but the marshal won't discover them.
// see: https://github.com/spf13/viper/issues/190
func handleNested(config *Configuration) *Configuration {
	config.DB.Driver = viper.GetString("db.driver")
	config.DB.ConnURL = viper.GetString("db.url")
	config.DB.Namespace = viper.GetString("db.namespace")

	config.Log.Level = viper.GetString("log.level")
	config.Log.JSON = viper.GetBool("log.json")

	return config
}
