// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package passforge

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"zntr.io/passforge/hangul"
)

// DefaultLanguage is the dictionary used when no language is requested.
const DefaultLanguage = "en"

// PassphraseOptions describes the passphrase to compose.
type PassphraseOptions struct {
	// NumWords is the number of words drawn.
	NumWords int `json:"num_words" yaml:"num_words" mapstructure:"num_words"`
	// WordSeparator joins the words.
	WordSeparator string `json:"word_separator" yaml:"word_separator" mapstructure:"word_separator"`
	// Capitalize uppercases the first character of every word. Korean words
	// are only capitalized once romanized.
	Capitalize bool `json:"capitalize" yaml:"capitalize" mapstructure:"capitalize"`
	// IncludeNumber appends one random digit to one random word.
	IncludeNumber bool `json:"include_number" yaml:"include_number" mapstructure:"include_number"`
	// Language is the BCP 47 tag of the dictionary.
	Language string `json:"language" yaml:"language" mapstructure:"language"`
	// Romanize rewrites Korean words as two-set keyboard keystrokes.
	Romanize bool `json:"romanize" yaml:"romanize" mapstructure:"romanize"`
	// UseJosa attaches a grammatical particle to every Korean word.
	UseJosa bool `json:"use_josa" yaml:"use_josa" mapstructure:"use_josa"`
	// Dictionary replaces the built-in word list when set.
	Dictionary *Dictionary `json:"-" yaml:"-" mapstructure:"-"`
}

// DefaultPassphraseOptions returns four capitalized English words joined by
// '-' with one digit appended.
func DefaultPassphraseOptions() PassphraseOptions {
	return PassphraseOptions{
		NumWords:      4,
		WordSeparator: "-",
		Capitalize:    true,
		IncludeNumber: true,
		Language:      DefaultLanguage,
	}
}

// dictionary resolves the word list and the effective language tag.
func (o PassphraseOptions) dictionary() (Dictionary, string, error) {
	lang := o.Language

	if o.Dictionary != nil {
		if lang == "" {
			lang = o.Dictionary.Language()
		}
		if o.Dictionary.Len() == 0 {
			return Dictionary{}, lang, fmt.Errorf("%w: empty word list for %q", ErrUnknownDictionary, lang)
		}
		return *o.Dictionary, lang, nil
	}

	if lang == "" {
		lang = DefaultLanguage
	}
	d, err := LookupDictionary(lang)
	return d, lang, err
}

// Passphrase composes a passphrase of opts.NumWords dictionary words.
//
// Words are drawn with replacement. For Korean, particles are attached
// after digit injection and before romanization, and capitalization is
// deferred until the words are romanized.
func (g *Generator) Passphrase(opts PassphraseOptions) (string, error) {
	// Check arguments
	if opts.NumWords < 0 {
		return "", &operationError{"Passphrase", fmt.Errorf("%w: negative word count %d", ErrInvalidArgument, opts.NumWords)}
	}

	dict, lang, err := opts.dictionary()
	if err != nil {
		return "", &operationError{"Passphrase", err}
	}
	if opts.NumWords == 0 {
		return "", nil
	}

	korean := isKorean(lang)
	tag := language.Make(lang)

	words := make([]string, opts.NumWords)
	for i := range words {
		idx, err := g.Uniform(dict.Len())
		if err != nil {
			return "", &operationError{"Passphrase", err}
		}

		word := dict.Word(idx)
		if opts.Capitalize && !korean {
			word = capitalize(word, tag)
		}
		words[i] = word
	}

	if opts.IncludeNumber {
		idx, err := g.Uniform(len(words))
		if err != nil {
			return "", &operationError{"Passphrase", err}
		}
		digit, err := g.Uniform(10)
		if err != nil {
			return "", &operationError{"Passphrase", err}
		}
		words[idx] += strconv.Itoa(digit)
	}

	if korean {
		for i, word := range words {
			if opts.UseJosa {
				word = hangul.AttachJosa(word, hangul.Relations[i%len(hangul.Relations)])
			}
			if opts.Romanize {
				word = hangul.Romanize(word)
				if opts.Capitalize {
					word = capitalize(word, language.English)
				}
			}
			words[i] = word
		}
	}

	return strings.Join(words, opts.WordSeparator), nil
}

// capitalize uppercases the first rune of word using the casing rules of
// tag.
func capitalize(word string, tag language.Tag) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return cases.Upper(tag).String(string(r)) + word[size:]
}

// GeneratePassphrase composes a passphrase from crypto/rand. See
// Generator.Passphrase.
func GeneratePassphrase(opts PassphraseOptions) (string, error) {
	return defaultGenerator.Passphrase(opts)
}
