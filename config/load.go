package config

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load reads, decodes and validates the file at path. Fields missing from
// the file keep their Default values.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var perr viper.ConfigParseError
		if errors.As(err, &perr) {
			return nil, errors.Wrapf(ErrInvalidConfig, "decode %s: %v", path, err)
		}
		return nil, errors.Wrap(err, "config: read")
	}

	return decode(v)
}

// LoadWithDefaults is Load, except that a missing file yields Default.
func LoadWithDefaults(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return Load(path)
}

// Parse decodes YAML data over Default and validates the result. Unknown
// keys are rejected; ${VAR} references in string values are expanded.
func Parse(data []byte) (*Config, error) {
	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "decode: %v", err)
	}

	return decode(v)
}

// Marshal encodes cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	return v
}

// decode expands environment references, decodes the settings over Default
// and validates the result.
func decode(v *viper.Viper) (*Config, error) {
	for _, key := range v.AllKeys() {
		if s, ok := v.Get(key).(string); ok {
			v.Set(key, os.ExpandEnv(s))
		}
	}

	cfg := Default()
	if err := v.UnmarshalExact(cfg); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "decode: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
