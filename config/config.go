package config

import (
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "MODASHOP_CONFIG_FILE"

// Config holds non-secret app settings. Credentials never live here; they go
// through the secrets cascade.
type Config struct {
	LogLevel     string `mapstructure:"log_level"`
	APIBaseURL   string `mapstructure:"api_base_url"`
	DataDir      string `mapstructure:"data_dir"`
	AssetsDir    string `mapstructure:"assets_dir"`
	OverrideFile string `mapstructure:"override_file"`
	CatalogFile  string `mapstructure:"catalog_file"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("api_base_url", "https://api.modashop.app")
	v.SetDefault("data_dir", "data")
	v.SetDefault("assets_dir", "assets")
	v.SetDefault("override_file", ".modashop.env")
	v.SetDefault("catalog_file", "assets/catalog.xlsx")
	v.SetDefault("redirect_url", "https://modashop.app/auth/google/callback")

	path := configFilepath()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		// The default file is optional; an explicitly requested one is not.
		_, statErr := os.Stat(path)
		if !(os.IsNotExist(statErr) && path == defaultConfigFile) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

const defaultConfigFile = "modashop.yaml"

func configFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	cmdLine.ParseErrorsWhitelist.UnknownFlags = true
	arg := cmdLine.String("config", defaultConfigFile, "config file")
	_ = cmdLine.Parse(os.Args[1:])
	if env, ok := os.LookupEnv(configFileEnvName); ok {
		return env
	}
	return *arg
}
