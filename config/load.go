package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "ALGOSENDER"

var (
	ErrConfigFailedToSetDefaults = errors.New("error occurred while setting defaults")
	ErrConfigPath                = errors.New("config path error")
	ErrConfigFailedToDump        = errors.New("failed to dump config")
)

func Load(configFileDirs ...string) (*AlgoSenderConfig, error) {
	cfg := getDefaultConfig()

	err := setDefaults(cfg, "")
	if err != nil {
		return nil, err
	}

	err = overrideWithFiles(configFileDirs...)
	if err != nil {
		return nil, err
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// DumpConfig writes the effective configuration to the given file as YAML.
func DumpConfig(filePath string) error {
	out, err := yaml.Marshal(viper.AllSettings())
	if err != nil {
		return errors.Join(ErrConfigFailedToDump, err)
	}

	err = os.WriteFile(filePath, out, 0o600)
	if err != nil {
		return errors.Join(ErrConfigFailedToDump, err)
	}

	return nil
}

// setDefaults registers every leaf of the default config as a viper default so that
// nested keys can be overridden individually by files and environment variables.
func setDefaults(defaults any, prefix string) error {
	defaultsMap := make(map[string]interface{})

	if err := mapstructure.Decode(defaults, &defaultsMap); err != nil {
		return errors.Join(ErrConfigFailedToSetDefaults, err)
	}

	for key, value := range defaultsMap {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if isNested(value) {
			if err := setDefaults(value, fullKey); err != nil {
				return err
			}
			continue
		}

		viper.SetDefault(fullKey, value)
	}

	return nil
}

func isNested(value interface{}) bool {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr:
		return !v.IsNil() && v.Elem().Kind() == reflect.Struct
	case reflect.Struct:
		return true
	case reflect.Map:
		_, ok := value.(map[string]interface{})
		return ok
	default:
		return false
	}
}

func overrideWithFiles(configFileDirs ...string) error {
	if len(configFileDirs) == 0 || configFileDirs[0] == "" {
		return nil
	}

	for _, path := range configFileDirs {
		stat, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.Join(ErrConfigPath, fmt.Errorf("path: %s does not exist", path))
			}
			return err
		}
		if !stat.IsDir() {
			return errors.Join(ErrConfigPath, fmt.Errorf("path: %s should be a directory", path))
		}

		viper.AddConfigPath(path)
	}

	err := viper.ReadInConfig()
	if err != nil {
		return err
	}

	return nil
}
