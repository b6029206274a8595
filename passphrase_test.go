// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package passforge

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

var (
	hangulPattern   = regexp.MustCompile(`[가-힣]`)
	romanizedPhrase = regexp.MustCompile(`^[a-zA-Z-]+$`)
)

func TestPassphrase(t *testing.T) {
	g := &Generator{}

	t.Run("WordCount", func(t *testing.T) {
		for _, sep := range []string{"-", " ", "::", "."} {
			phrase, err := g.Passphrase(PassphraseOptions{NumWords: 5, WordSeparator: sep})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			parts := strings.Split(phrase, sep)
			if len(parts) != 5 {
				t.Fatalf("expected 5 words, got %d (%q)", len(parts), phrase)
			}
			for _, p := range parts {
				if p == "" {
					t.Errorf("empty word in %q", phrase)
				}
			}
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		phrase, err := GeneratePassphrase(DefaultPassphraseOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		parts := strings.Split(phrase, "-")
		if len(parts) != 4 {
			t.Fatalf("expected 4 words, got %q", phrase)
		}

		digits := 0
		for _, p := range parts {
			r, _ := utf8.DecodeRuneInString(p)
			if !unicode.IsUpper(r) {
				t.Errorf("expected capitalized word, got %q", p)
			}
			if last := p[len(p)-1]; last >= '0' && last <= '9' {
				digits++
			}
		}
		if digits != 1 {
			t.Errorf("expected exactly one word with a digit, got %d in %q", digits, phrase)
		}
	})

	t.Run("ZeroWords", func(t *testing.T) {
		phrase, err := g.Passphrase(PassphraseOptions{NumWords: 0, IncludeNumber: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if phrase != "" {
			t.Errorf("expected empty passphrase, got %q", phrase)
		}
	})

	t.Run("NegativeWords", func(t *testing.T) {
		if _, err := g.Passphrase(PassphraseOptions{NumWords: -1}); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected %v, got %v", ErrInvalidArgument, err)
		}
	})

	t.Run("UnknownDictionary", func(t *testing.T) {
		if _, err := g.Passphrase(PassphraseOptions{NumWords: 3, Language: "xx"}); !errors.Is(err, ErrUnknownDictionary) {
			t.Errorf("expected %v, got %v", ErrUnknownDictionary, err)
		}
		empty := NewDictionary("en", nil)
		if _, err := g.Passphrase(PassphraseOptions{NumWords: 3, Dictionary: &empty}); !errors.Is(err, ErrUnknownDictionary) {
			t.Errorf("expected %v, got %v", ErrUnknownDictionary, err)
		}
	})

	t.Run("CustomDictionary", func(t *testing.T) {
		d := NewDictionary("en", []string{"istanbul"})
		phrase, err := g.Passphrase(PassphraseOptions{NumWords: 3, WordSeparator: " ", Capitalize: true, Dictionary: &d})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if phrase != "Istanbul Istanbul Istanbul" {
			t.Errorf("unexpected passphrase %q", phrase)
		}
	})

	t.Run("LanguageAwareCapitalization", func(t *testing.T) {
		d := NewDictionary("tr", []string{"istanbul"})
		phrase, err := g.Passphrase(PassphraseOptions{NumWords: 1, Capitalize: true, Dictionary: &d})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if phrase != "İstanbul" {
			t.Errorf("unexpected passphrase %q", phrase)
		}
	})

	t.Run("EntropyUnavailable", func(t *testing.T) {
		failing := &Generator{Entropy: failingReader{}}
		if _, err := failing.Passphrase(DefaultPassphraseOptions()); !errors.Is(err, ErrEntropyUnavailable) {
			t.Errorf("expected %v, got %v", ErrEntropyUnavailable, err)
		}
	})
}

func TestKoreanPassphrase(t *testing.T) {
	g := &Generator{}

	t.Run("Hangul", func(t *testing.T) {
		phrase, err := g.Passphrase(PassphraseOptions{NumWords: 3, WordSeparator: "-", Language: "ko", Capitalize: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(strings.Split(phrase, "-")) != 3 {
			t.Errorf("expected 3 words, got %q", phrase)
		}
		if !hangulPattern.MatchString(phrase) {
			t.Errorf("expected Hangul, got %q", phrase)
		}
	})

	t.Run("Romanized", func(t *testing.T) {
		phrase, err := g.Passphrase(PassphraseOptions{NumWords: 3, WordSeparator: "-", Language: "ko-KR", Romanize: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(strings.Split(phrase, "-")) != 3 {
			t.Errorf("expected 3 words, got %q", phrase)
		}
		if hangulPattern.MatchString(phrase) || !romanizedPhrase.MatchString(phrase) {
			t.Errorf("expected keystrokes only, got %q", phrase)
		}
	})

	t.Run("Josa", func(t *testing.T) {
		phrase, err := g.Passphrase(PassphraseOptions{NumWords: 6, WordSeparator: " ", Language: "ko", UseJosa: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		parts := strings.Split(phrase, " ")
		if len(parts) != 6 {
			t.Fatalf("expected 6 words, got %q", phrase)
		}

		suffixes := []*regexp.Regexp{
			regexp.MustCompile(`(이|가)$`),
			regexp.MustCompile(`(을|를)$`),
			regexp.MustCompile(`(과|와)$`),
			regexp.MustCompile(`(로|으로)$`),
			regexp.MustCompile(`(은|는)$`),
			regexp.MustCompile(`의$`),
		}
		for i, p := range parts {
			if !suffixes[i].MatchString(p) {
				t.Errorf("word %d: expected %s, got %q", i, suffixes[i], p)
			}
		}
	})

	t.Run("JosaAfterDigit", func(t *testing.T) {
		d := NewDictionary("ko", []string{"하늘"})
		phrase, err := g.Passphrase(PassphraseOptions{NumWords: 1, Language: "ko", UseJosa: true, IncludeNumber: true, Dictionary: &d})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !regexp.MustCompile(`^하늘[0-9](이|가)$`).MatchString(phrase) {
			t.Errorf("unexpected passphrase %q", phrase)
		}
	})

	t.Run("RomanizedCapitalized", func(t *testing.T) {
		d := NewDictionary("ko", []string{"홍길동"})
		phrase, err := g.Passphrase(PassphraseOptions{
			NumWords:      2,
			WordSeparator: "-",
			Language:      "ko",
			Romanize:      true,
			UseJosa:       true,
			Capitalize:    true,
			Dictionary:    &d,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 홍길동이 / 홍길동을
		if phrase != "Ghdrlfehddl-Ghdrlfehddmf" {
			t.Errorf("unexpected passphrase %q", phrase)
		}
	})

	t.Run("JosaIgnoredForOtherLanguages", func(t *testing.T) {
		d := NewDictionary("en", []string{"sky"})
		phrase, err := g.Passphrase(PassphraseOptions{NumWords: 2, WordSeparator: "-", UseJosa: true, Romanize: true, Dictionary: &d})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if phrase != "sky-sky" {
			t.Errorf("unexpected passphrase %q", phrase)
		}
	})
}

func BenchmarkPassphrase(b *testing.B) {
	g := &Generator{}
	opts := DefaultPassphraseOptions()
	opts.Language = "ko"
	opts.UseJosa = true
	opts.Romanize = true
	for i := 0; i < b.N; i++ {
		if _, err := g.Passphrase(opts); err != nil {
			b.Error(err)
			return
		}
	}
}
