// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package passforge

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Dictionary is an immutable word list for one language.
type Dictionary struct {
	language string
	words    []string
}

// NewDictionary builds a dictionary from words. Words are trimmed and
// NFC-normalized, empty entries are dropped and the input is not retained.
func NewDictionary(lang string, words []string) Dictionary {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = norm.NFC.String(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return Dictionary{language: lang, words: out}
}

// Language returns the language tag of the dictionary.
func (d Dictionary) Language() string { return d.language }

// Len returns the number of words.
func (d Dictionary) Len() int { return len(d.words) }

// Word returns the word at index i.
func (d Dictionary) Word(i int) string { return d.words[i] }

// Words returns a copy of the word list.
func (d Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// builtinDictionaries holds the BIP-39 word lists keyed by canonical tag.
var builtinDictionaries = map[string]func() Dictionary{
	"en":      builtin("en", wordlists.English),
	"ko":      builtin("ko", wordlists.Korean),
	"ja":      builtin("ja", wordlists.Japanese),
	"es":      builtin("es", wordlists.Spanish),
	"fr":      builtin("fr", wordlists.French),
	"it":      builtin("it", wordlists.Italian),
	"cs":      builtin("cs", wordlists.Czech),
	"zh-Hans": builtin("zh-Hans", wordlists.ChineseSimplified),
	"zh-Hant": builtin("zh-Hant", wordlists.ChineseTraditional),
}

func builtin(lang string, words []string) func() Dictionary {
	return sync.OnceValue(func() Dictionary {
		return NewDictionary(lang, words)
	})
}

// canonicalLanguage maps a BCP 47 tag to the key of a built-in dictionary:
// "ko-KR" resolves to "ko" and "zh-TW" to "zh-Hant".
func canonicalLanguage(tag string) (string, bool) {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return "", false
	}

	base, _ := t.Base()
	if base.String() != "zh" {
		return base.String(), true
	}

	if script, _ := t.Script(); script.String() == "Hant" {
		return "zh-Hant", true
	}
	return "zh-Hans", true
}

// isKorean reports whether tag designates Korean.
func isKorean(tag string) bool {
	lang, ok := canonicalLanguage(tag)
	return ok && lang == "ko"
}

// LookupDictionary returns the built-in dictionary for a language tag.
func LookupDictionary(tag string) (Dictionary, error) {
	lang, ok := canonicalLanguage(tag)
	if !ok {
		return Dictionary{}, &operationError{"LookupDictionary", fmt.Errorf("%w: malformed language tag %q", ErrUnknownDictionary, tag)}
	}

	load, ok := builtinDictionaries[lang]
	if !ok {
		return Dictionary{}, &operationError{"LookupDictionary", fmt.Errorf("%w: no word list for %q", ErrUnknownDictionary, tag)}
	}

	d := load()
	if d.Len() == 0 {
		return Dictionary{}, &operationError{"LookupDictionary", fmt.Errorf("%w: empty word list for %q", ErrUnknownDictionary, tag)}
	}

	return d, nil
}

// Languages returns the tags of the built-in dictionaries, sorted.
func Languages() []string {
	out := make([]string, 0, len(builtinDictionaries))
	for lang := range builtinDictionaries {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// ReadDictionary parses one word per line. Blank lines and lines starting
// with '#' are skipped.
func ReadDictionary(lang string, r io.Reader) (Dictionary, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return Dictionary{}, &operationError{"ReadDictionary", err}
	}

	d := NewDictionary(lang, words)
	if d.Len() == 0 {
		return Dictionary{}, &operationError{"ReadDictionary", fmt.Errorf("%w: no words for %q", ErrUnknownDictionary, lang)}
	}

	return d, nil
}

// LoadDictionaryFile reads a word list from disk. Files ending in ".zst"
// are zstd-decompressed.
func LoadDictionaryFile(lang, path string) (Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dictionary{}, &operationError{"LoadDictionaryFile", err}
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return Dictionary{}, &operationError{"LoadDictionaryFile", fmt.Errorf("zstd reader: %w", err)}
		}
		defer dec.Close()
		r = dec
	}

	return ReadDictionary(lang, r)
}
