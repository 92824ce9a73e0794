package config

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"github.com/spf13/viper"
)

const envPrefix = "SLOTLEDGER"

type Config struct {
	HTTPAddr          string `mapstructure:"HTTP_ADDR" valid:"required"`
	Env               string `mapstructure:"ENV" valid:"required,in(development|production)"`
	LogLevel          string `mapstructure:"LOG_LEVEL" valid:"required,in(debug|info|warn|error|dpanic|panic|fatal)"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN" valid:"required,range(1|100000)"`
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads slotledger.yaml from the given path, or from . and ./config
// when path is empty. A missing file is not an error; environment
// variables prefixed SLOTLEDGER_ override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	if len(path) > 0 {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("slotledger")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 120)

	if errRead := v.ReadInConfig(); errRead != nil {
		var errNotFound viper.ConfigFileNotFoundError

		if len(path) > 0 || !errors.As(errRead, &errNotFound) {
			return nil,
				fmt.Errorf("read config: %w", errRead)
		}
	}

	var result Config

	if errUnmarshal := v.Unmarshal(&result); errUnmarshal != nil {
		return nil,
			fmt.Errorf("decode config: %w", errUnmarshal)
	}

	if _, errValidation := govalidator.ValidateStruct(&result); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "SlotLedger",
				Caller:      "Load",
				Issue:       errValidation,
			}
	}

	return &result,
		nil
}
