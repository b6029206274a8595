// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Package config loads the command-line settings from defaults, the
// passforge.yaml file, PASSFORGE_* environment variables and flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"zntr.io/passforge"
	"zntr.io/passforge/internal/logging"
)

const (
	// FileName is the configuration file name without extension.
	FileName = "passforge"
	// EnvPrefix prefixes the environment variables.
	EnvPrefix = "PASSFORGE"
	// KeyAnnotation is the flag annotation naming the configuration key a
	// flag overrides.
	KeyAnnotation = "passforge/config-key"
	// systemDir is searched after the user configuration directory.
	systemDir = "/etc/passforge"
)

// Config is the command-line configuration.
type Config struct {
	Log          LogConfig                   `mapstructure:"log" yaml:"log"`
	Language     string                      `mapstructure:"language" yaml:"language"`
	Password     passforge.PasswordOptions   `mapstructure:"password" yaml:"password"`
	Passphrase   passforge.PassphraseOptions `mapstructure:"passphrase" yaml:"passphrase"`
	Pin          PinConfig                   `mapstructure:"pin" yaml:"pin"`
	Policy       passforge.Policy            `mapstructure:"policy" yaml:"policy"`
	Seal         SealConfig                  `mapstructure:"seal" yaml:"seal"`
	Dictionaries map[string]string           `mapstructure:"dictionaries" yaml:"dictionaries,omitempty"`
}

// LogConfig selects the log verbosity.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// PinConfig describes generated PINs.
type PinConfig struct {
	Length int `mapstructure:"length" yaml:"length"`
}

// SealConfig selects the encryption algorithms by name.
type SealConfig struct {
	KDF  string `mapstructure:"kdf" yaml:"kdf"`
	AEAD string `mapstructure:"aead" yaml:"aead"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:        LogConfig{Level: "warn"},
		Language:   "en",
		Password:   passforge.DefaultPasswordOptions(),
		Passphrase: passforge.DefaultPassphraseOptions(),
		Pin:        PinConfig{Length: passforge.DefaultPinLength},
		Policy:     passforge.Policy{MinLength: 8},
		Seal: SealConfig{
			KDF:  passforge.SCRYPT.String(),
			AEAD: passforge.AESGCM.String(),
		},
	}
}

// Defaults flattens Default into viper keys.
func Defaults() map[string]any {
	d := Default()
	return map[string]any{
		"log.level":                 d.Log.Level,
		"language":                  d.Language,
		"password.length":           d.Password.Length,
		"password.uppercase":        d.Password.Uppercase,
		"password.lowercase":        d.Password.Lowercase,
		"password.numbers":          d.Password.Numbers,
		"password.special":          d.Password.Special,
		"password.ambiguous":        d.Password.Ambiguous,
		"password.min_uppercase":    d.Password.MinUppercase,
		"password.min_lowercase":    d.Password.MinLowercase,
		"password.min_numbers":      d.Password.MinNumbers,
		"password.min_special":      d.Password.MinSpecial,
		"passphrase.num_words":      d.Passphrase.NumWords,
		"passphrase.word_separator": d.Passphrase.WordSeparator,
		"passphrase.capitalize":     d.Passphrase.Capitalize,
		"passphrase.include_number": d.Passphrase.IncludeNumber,
		"passphrase.language":       d.Passphrase.Language,
		"passphrase.romanize":       d.Passphrase.Romanize,
		"passphrase.use_josa":       d.Passphrase.UseJosa,
		"pin.length":                d.Pin.Length,
		"policy.min_length":         d.Policy.MinLength,
		"policy.max_length":         d.Policy.MaxLength,
		"policy.require_uppercase":  d.Policy.RequireUppercase,
		"policy.require_lowercase":  d.Policy.RequireLowercase,
		"policy.require_numbers":    d.Policy.RequireNumbers,
		"policy.require_special":    d.Policy.RequireSpecial,
		"policy.min_score":          d.Policy.MinScore,
		"seal.kdf":                  d.Seal.KDF,
		"seal.aead":                 d.Seal.AEAD,
	}
}

// UserDir returns the per-user configuration directory.
func UserDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, FileName), nil
}

// DefaultPath returns the per-user configuration file path.
func DefaultPath() (string, error) {
	dir, err := UserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName+".yaml"), nil
}

// BindFlag marks the flag name of flags as overriding key. Persistent
// flags are bound through the PersistentFlags set of their command.
func BindFlag(flags *pflag.FlagSet, name, key string) {
	if err := flags.SetAnnotation(name, KeyAnnotation, []string{key}); err != nil {
		panic(fmt.Sprintf("config: bind unknown flag %q: %v", name, err))
	}
}

// Load resolves the configuration for cmd. A missing configuration file is
// not an error unless explicitPath names it.
func Load(cmd *cobra.Command, explicitPath string) (Config, error) {
	var c Config
	v := viper.New()

	// Defaults
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	// File
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return c, fmt.Errorf("unable to read configuration: %w", err)
		}
		v.SetConfigFile(explicitPath)
	}
	if dir, err := UserDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(systemDir)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("unable to read configuration: %w", err)
		}
		logging.Debugf("no configuration file found, using defaults")
	} else {
		logging.Infof("using configuration file %s", v.ConfigFileUsed())
	}

	// Environment
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Flags
	if cmd != nil {
		var bindErr error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			keys, ok := f.Annotations[KeyAnnotation]
			if !ok || len(keys) == 0 || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(keys[0], f)
		})
		if bindErr != nil {
			return c, fmt.Errorf("unable to bind flags: %w", bindErr)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return c, nil
}

// Write stores c as YAML at path, or at DefaultPath when path is empty.
func Write(c *Config, path string) (string, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return "", err
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("unable to encode configuration: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("unable to write configuration: %w", err)
	}

	return path, nil
}

// PasswordOptions returns the password settings.
func (c *Config) PasswordOptions() passforge.PasswordOptions {
	return c.Password
}

// PassphraseOptions returns the passphrase settings. A word-list file
// configured for the passphrase language replaces the built-in dictionary.
func (c *Config) PassphraseOptions() (passforge.PassphraseOptions, error) {
	opts := c.Passphrase
	if opts.Language == "" {
		opts.Language = passforge.DefaultLanguage
	}

	for lang, path := range c.Dictionaries {
		// Viper lowercases map keys.
		if !strings.EqualFold(lang, opts.Language) {
			continue
		}

		logging.Debugf("loading %s dictionary from %s", opts.Language, path)
		d, err := passforge.LoadDictionaryFile(opts.Language, path)
		if err != nil {
			return opts, fmt.Errorf("unable to load %s dictionary: %w", opts.Language, err)
		}
		opts.Dictionary = &d
		break
	}

	return opts, nil
}

// Sealer returns the encryption settings.
func (c *Config) Sealer() (*passforge.Sealer, error) {
	kdf, err := passforge.ParseKDF(c.Seal.KDF)
	if err != nil {
		return nil, err
	}
	aead, err := passforge.ParseAEAD(c.Seal.AEAD)
	if err != nil {
		return nil, err
	}

	return &passforge.Sealer{KeyDerivation: kdf, Encryption: aead}, nil
}
