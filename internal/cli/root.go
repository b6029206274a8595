// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Package cli implements the passforge command line.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"zntr.io/passforge"
	"zntr.io/passforge/internal/config"
	"zntr.io/passforge/internal/i18n"
	"zntr.io/passforge/internal/logging"
)

// version is set by the linker.
var version = "dev"

// app carries the state shared by the commands of one invocation.
type app struct {
	cfgFile string
	cfg     config.Config

	gen        *passforge.Generator
	clipboard  func(string) error
	readSecret func(prompt string) (string, error)
}

func newApp() *app {
	return &app{
		cfg:        config.Default(),
		gen:        &passforge.Generator{},
		clipboard:  clipboard.WriteAll,
		readSecret: readTerminalSecret,
	}
}

// Execute runs the command line. The caller handles the process exit code.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passforge",
		Short: "Generate passwords, passphrases and PINs",
		Long: `passforge generates credentials from a cryptographically secure source.

Passphrases can be drawn from several languages. Korean passphrases can carry
grammatical particles and be romanized to the keys typed on a two-set keyboard.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "configuration file (default $XDG_CONFIG_HOME/passforge/passforge.yaml)")
	pf.String("log-level", a.cfg.Log.Level, "log level (debug, info, warn, error)")
	pf.String("lang", a.cfg.Language, "message language (en, ko)")
	config.BindFlag(pf, "log-level", "log.level")
	config.BindFlag(pf, "lang", "language")

	cmd.AddCommand(
		a.passwordCmd(),
		a.passphraseCmd(),
		a.pinCmd(),
		a.strengthCmd(),
		a.validateCmd(),
		a.encryptCmd(),
		a.decryptCmd(),
		a.hangulCmd(),
		a.configCmd(),
	)

	return cmd
}

// setup resolves the configuration of the command being run.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd, a.cfgFile)
	if err != nil {
		return err
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	if err := i18n.SetLang(cfg.Language); err != nil {
		return err
	}

	logging.Debugf("running %q with language %s", cmd.CommandPath(), cfg.Language)
	a.cfg = cfg

	return nil
}

// repeat collects count results of fn.
func repeat(count int, fn func() (string, error)) ([]string, error) {
	if count < 1 {
		return nil, errors.New(i18n.T("error.count", "Count", count))
	}

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// emit prints values one per line and optionally copies them to the
// clipboard. A clipboard failure is reported but does not fail the command.
func (a *app) emit(cmd *cobra.Command, values []string, copyToClipboard bool) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), v); err != nil {
			return err
		}
	}

	if !copyToClipboard {
		return nil
	}

	if err := a.clipboard(strings.Join(values, "\n")); err != nil {
		logging.Warnf("clipboard write failed: %v", err)
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("clipboard.failed", "Error", err))
		return nil
	}
	fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("clipboard.copied"))

	return nil
}
