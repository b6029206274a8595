// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"zntr.io/passforge"
	"zntr.io/passforge/internal/config"
	"zntr.io/passforge/internal/i18n"
)

// scoreColors maps Strength.Color to terminal colors.
var scoreColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("9"),
	"orange": lipgloss.Color("208"),
	"yellow": lipgloss.Color("11"),
	"lime":   lipgloss.Color("10"),
	"green":  lipgloss.Color("2"),
}

var warningStyle = lipgloss.NewStyle().Faint(true)

func scoreStyle(color string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if c, ok := scoreColors[color]; ok {
		s = s.Foreground(c)
	}
	return s
}

func (a *app) strengthCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "strength <password>",
		Short: "Rate the strength of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := passforge.CalculateStrength(args[0])
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}

			label := scoreStyle(s.Color).Render(i18n.T("strength.label." + strconv.Itoa(s.Score)))
			fmt.Fprintln(out, i18n.T("strength.score", "Score", s.Score, "Label", label))
			fmt.Fprintln(out, i18n.T("strength.entropy", "Bits", strconv.FormatFloat(s.Entropy, 'f', 1, 64)))
			if len(s.Warnings) > 0 {
				fmt.Fprintln(out, i18n.T("strength.warnings"))
				for _, w := range s.Warnings {
					fmt.Fprintln(out, warningStyle.Render("  - "+i18n.T("strength.warning."+string(w))))
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the rating as JSON")

	return cmd
}

// violationMessages maps policy violations to message IDs.
var violationMessages = []struct {
	err error
	id  string
}{
	{passforge.ErrTooShort, "validate.violation.too_short"},
	{passforge.ErrTooLong, "validate.violation.too_long"},
	{passforge.ErrMissingUppercase, "validate.violation.missing_uppercase"},
	{passforge.ErrMissingLowercase, "validate.violation.missing_lowercase"},
	{passforge.ErrMissingNumber, "validate.violation.missing_number"},
	{passforge.ErrMissingSpecial, "validate.violation.missing_special"},
	{passforge.ErrTooWeak, "validate.violation.too_weak"},
}

func violationMessage(err error) string {
	for _, v := range violationMessages {
		if errors.Is(err, v.err) {
			return i18n.T(v.id)
		}
	}
	return err.Error()
}

func (a *app) validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <password>",
		Short: "Check a password against a policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := passforge.ValidatePassword(args[0], a.cfg.Policy)
			if err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("validate.ok"))
				return nil
			}

			for _, v := range passforge.Violations(err) {
				fmt.Fprintln(cmd.OutOrStdout(), "  - "+violationMessage(v))
			}
			return fmt.Errorf("%s: %w", i18n.T("validate.invalid"), err)
		},
	}

	d := config.Default().Policy
	f := cmd.Flags()
	f.Int("min-length", d.MinLength, "minimum length")
	f.Int("max-length", d.MaxLength, "maximum length (0 disables)")
	f.Bool("require-uppercase", d.RequireUppercase, "require an uppercase letter")
	f.Bool("require-lowercase", d.RequireLowercase, "require a lowercase letter")
	f.Bool("require-numbers", d.RequireNumbers, "require a digit")
	f.Bool("require-special", d.RequireSpecial, "require a special character")
	f.Int("min-score", d.MinScore, "minimum strength score (0-4)")
	for flag, key := range map[string]string{
		"min-length":        "policy.min_length",
		"max-length":        "policy.max_length",
		"require-uppercase": "policy.require_uppercase",
		"require-lowercase": "policy.require_lowercase",
		"require-numbers":   "policy.require_numbers",
		"require-special":   "policy.require_special",
		"min-score":         "policy.min_score",
	} {
		config.BindFlag(f, flag, key)
	}

	return cmd
}
