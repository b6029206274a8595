// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"zntr.io/passforge/hangul"
)

func (a *app) hangulCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hangul",
		Short: "Korean text utilities",
	}

	cmd.AddCommand(
		a.decomposeCmd(),
		a.romanizeCmd(),
		a.josaCmd(),
	)

	return cmd
}

func (a *app) decomposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose <text>...",
		Short: "Split syllables into jamo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, r := range strings.Join(args, " ") {
				if unicode.IsSpace(r) {
					continue
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%c\t%s\n", r, strings.Join(hangul.Decompose(r), " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) romanizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "romanize <text>...",
		Short:   "Print the two-set keyboard keys typing the text",
		Example: "  passforge hangul romanize 홍길동  # ghdrlfehd",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), hangul.Romanize(strings.Join(args, " ")))
			return err
		},
	}
}

func (a *app) josaCmd() *cobra.Command {
	var relation string

	cmd := &cobra.Command{
		Use:   "josa <word>",
		Short: "Attach a grammatical particle to a word",
		Long: `Attach a grammatical particle to a word.

Without --relation the word is printed with every particle.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			out := cmd.OutOrStdout()

			if relation != "" {
				rel, err := hangul.ParseRelation(relation)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, hangul.AttachJosa(word, rel))
				return err
			}

			for _, rel := range hangul.Relations {
				if _, err := fmt.Fprintf(out, "%s\t%s\n", rel, hangul.AttachJosa(word, rel)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&relation, "relation", "r", "", "subject, object, topic, conjunctive, directional or possessive")

	return cmd
}
