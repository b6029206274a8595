// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"zntr.io/passforge/internal/i18n"
)

// readTerminalSecret prompts on stderr and reads a line from the terminal
// without echo.
func readTerminalSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New(i18n.T("error.passphrase_required"))
	}

	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("unable to read passphrase: %w", err)
	}

	return string(b), nil
}

// passphrase returns flagValue or prompts for it, twice when confirm is set.
func (a *app) passphrase(flagValue string, confirm bool) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	p, err := a.readSecret(i18n.T("prompt.passphrase"))
	if err != nil {
		return "", err
	}
	if confirm {
		again, err := a.readSecret(i18n.T("prompt.confirm"))
		if err != nil {
			return "", err
		}
		if again != p {
			return "", errors.New(i18n.T("error.passphrase_mismatch"))
		}
	}

	return p, nil
}

// input returns the arguments joined by spaces, or stdin without its final
// line break.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("unable to read stdin: %w", err)
	}
	text := strings.TrimRight(string(b), "\r\n")
	if text == "" {
		return "", errors.New(i18n.T("error.empty_input"))
	}

	return text, nil
}

func (a *app) encryptCmd() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "encrypt [text]",
		Short: "Encrypt text with a passphrase",
		Long: `Encrypt text with a key derived from a passphrase.

The text is read from the arguments or from stdin. Without --passphrase the
passphrase is prompted on the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			p, err := a.passphrase(passphrase, true)
			if err != nil {
				return err
			}
			sealer, err := a.cfg.Sealer()
			if err != nil {
				return err
			}

			out, err := sealer.Encrypt(text, p)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase (prompted when empty)")

	return cmd
}

func (a *app) decryptCmd() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "decrypt [ciphertext]",
		Short: "Decrypt text produced by encrypt",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := input(cmd, args)
			if err != nil {
				return err
			}
			p, err := a.passphrase(passphrase, false)
			if err != nil {
				return err
			}
			sealer, err := a.cfg.Sealer()
			if err != nil {
				return err
			}

			out, err := sealer.Decrypt(strings.TrimSpace(encoded), p)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase (prompted when empty)")

	return cmd
}
