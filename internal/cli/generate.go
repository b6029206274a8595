// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"zntr.io/passforge"
	"zntr.io/passforge/internal/config"
	"zntr.io/passforge/internal/logging"
)

// outputFlags registers --count and --copy.
func outputFlags(cmd *cobra.Command, count *int, copyToClipboard *bool) {
	cmd.Flags().IntVarP(count, "count", "n", 1, "number of values to generate")
	cmd.Flags().BoolVarP(copyToClipboard, "copy", "c", false, "copy the output to the clipboard")
}

func (a *app) passwordCmd() *cobra.Command {
	var (
		count           int
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.cfg.PasswordOptions()
			values, err := repeat(count, func() (string, error) {
				return a.gen.Password(opts)
			})
			if err != nil {
				return err
			}
			return a.emit(cmd, values, copyToClipboard)
		},
	}

	d := passforge.DefaultPasswordOptions()
	f := cmd.Flags()
	f.IntP("length", "l", d.Length, "password length")
	f.Bool("uppercase", d.Uppercase, "include uppercase letters")
	f.Bool("lowercase", d.Lowercase, "include lowercase letters")
	f.Bool("numbers", d.Numbers, "include digits")
	f.Bool("special", d.Special, "include special characters")
	f.Bool("ambiguous", d.Ambiguous, "include confusable characters (0, O, 1, l, I)")
	f.Int("min-uppercase", d.MinUppercase, "minimum uppercase letters")
	f.Int("min-lowercase", d.MinLowercase, "minimum lowercase letters")
	f.Int("min-numbers", d.MinNumbers, "minimum digits")
	f.Int("min-special", d.MinSpecial, "minimum special characters")
	for flag, key := range map[string]string{
		"length":        "password.length",
		"uppercase":     "password.uppercase",
		"lowercase":     "password.lowercase",
		"numbers":       "password.numbers",
		"special":       "password.special",
		"ambiguous":     "password.ambiguous",
		"min-uppercase": "password.min_uppercase",
		"min-lowercase": "password.min_lowercase",
		"min-numbers":   "password.min_numbers",
		"min-special":   "password.min_special",
	} {
		config.BindFlag(f, flag, key)
	}
	outputFlags(cmd, &count, &copyToClipboard)

	return cmd
}

func (a *app) passphraseCmd() *cobra.Command {
	var (
		count           int
		copyToClipboard bool
		dictionary      string
	)

	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate passphrases from a word list",
		Example: `  passforge passphrase --words 5
  passforge passphrase --language ko --josa --romanize
  passforge passphrase --dictionary words.txt.zst`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.cfg.PassphraseOptions()
			if err != nil {
				return err
			}

			if dictionary != "" {
				d, err := passforge.LoadDictionaryFile(opts.Language, dictionary)
				if err != nil {
					return err
				}
				logging.Infof("loaded %d words from %s", d.Len(), dictionary)
				opts.Dictionary = &d
			}

			values, err := repeat(count, func() (string, error) {
				return a.gen.Passphrase(opts)
			})
			if err != nil {
				return err
			}
			return a.emit(cmd, values, copyToClipboard)
		},
	}

	d := passforge.DefaultPassphraseOptions()
	f := cmd.Flags()
	f.IntP("words", "w", d.NumWords, "number of words")
	f.StringP("separator", "s", d.WordSeparator, "word separator")
	f.Bool("capitalize", d.Capitalize, "capitalize every word")
	f.Bool("include-number", d.IncludeNumber, "append a digit to one word")
	f.StringP("language", "L", d.Language, "dictionary language ("+strings.Join(passforge.Languages(), ", ")+")")
	f.Bool("romanize", d.Romanize, "type Korean words on a two-set keyboard")
	f.Bool("josa", d.UseJosa, "attach grammatical particles to Korean words")
	f.StringVar(&dictionary, "dictionary", "", "word list file, one word per line (.zst accepted)")
	for flag, key := range map[string]string{
		"words":          "passphrase.num_words",
		"separator":      "passphrase.word_separator",
		"capitalize":     "passphrase.capitalize",
		"include-number": "passphrase.include_number",
		"language":       "passphrase.language",
		"romanize":       "passphrase.romanize",
		"josa":           "passphrase.use_josa",
	} {
		config.BindFlag(f, flag, key)
	}
	outputFlags(cmd, &count, &copyToClipboard)

	return cmd
}

func (a *app) pinCmd() *cobra.Command {
	var (
		count           int
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Generate numeric PINs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := repeat(count, func() (string, error) {
				return a.gen.Pin(a.cfg.Pin.Length)
			})
			if err != nil {
				return err
			}
			return a.emit(cmd, values, copyToClipboard)
		},
	}

	cmd.Flags().IntP("length", "l", passforge.DefaultPinLength, "number of digits")
	config.BindFlag(cmd.Flags(), "length", "pin.length")
	outputFlags(cmd, &count, &copyToClipboard)

	return cmd
}
