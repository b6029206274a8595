// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package passforge

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Warning identifies a weakness found by CalculateStrength.
type Warning string

const (
	// WarnTooShort is raised below 8 characters.
	WarnTooShort Warning = "too_short"
	// WarnLettersOnly is raised when only letters are used.
	WarnLettersOnly Warning = "letters_only"
	// WarnDigitsOnly is raised when only digits are used.
	WarnDigitsOnly Warning = "digits_only"
	// WarnRepeatedCharacters is raised on a run of 3 identical characters.
	WarnRepeatedCharacters Warning = "repeated_characters"
	// WarnCommonPattern is raised on a well-known prefix.
	WarnCommonPattern Warning = "common_pattern"
)

// Score labels and colors, indexed by score.
var (
	strengthLabels = [...]string{"Very Weak", "Weak", "Fair", "Strong", "Very Strong"}
	strengthColors = [...]string{"red", "orange", "yellow", "lime", "green"}
)

// commonPrefixes are checked case-insensitively.
var commonPrefixes = []string{"123", "abc", "qwe", "password", "admin"}

// Strength is a heuristic rating of a password. It is not an entropy model
// of human-chosen secrets.
type Strength struct {
	// Score ranges from 0 (very weak) to 4 (very strong).
	Score int `json:"score"`
	// Label is the human readable score.
	Label string `json:"label"`
	// Color is the display color of the score.
	Color string `json:"color"`
	// Entropy is length * log2(alphabet size), in bits.
	Entropy float64 `json:"entropy"`
	// Warnings lists every weakness found.
	Warnings []Warning `json:"warnings"`
}

// composition counts the character classes present in a password.
type composition struct {
	lower, upper, digit, special bool
}

func compose(password string) composition {
	var c composition
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.special = true
		}
	}
	return c
}

func (c composition) variety() int {
	n := 0
	for _, ok := range []bool{c.lower, c.upper, c.digit, c.special} {
		if ok {
			n++
		}
	}
	return n
}

func (c composition) poolSize() int {
	size := 0
	if c.lower {
		size += 26
	}
	if c.upper {
		size += 26
	}
	if c.digit {
		size += 10
	}
	if c.special {
		size += 33
	}
	return size
}

// hasRun reports whether a character repeats at least n times in a row.
func hasRun(password string, n int) bool {
	var (
		prev  rune
		count int
	)
	for i, r := range password {
		if i > 0 && r == prev {
			count++
		} else {
			count = 1
		}
		if count >= n {
			return true
		}
		prev = r
	}
	return false
}

// CalculateStrength rates password on a 0-4 scale from its length,
// character variety and a few well-known weak patterns.
func CalculateStrength(password string) Strength {
	if password == "" {
		return Strength{
			Score:    0,
			Label:    strengthLabels[0],
			Color:    strengthColors[0],
			Warnings: []Warning{WarnTooShort},
		}
	}

	var (
		points   int
		warnings []Warning
		length   = utf8.RuneCountInString(password)
		comp     = compose(password)
	)

	for _, threshold := range []int{8, 12, 16, 20} {
		if length >= threshold {
			points++
		}
	}
	if length < 8 {
		warnings = append(warnings, WarnTooShort)
	}

	for _, threshold := range []int{2, 3, 4} {
		if comp.variety() >= threshold {
			points++
		}
	}

	switch {
	case !comp.digit && !comp.special:
		points--
		warnings = append(warnings, WarnLettersOnly)
	case comp.digit && !comp.lower && !comp.upper && !comp.special:
		points -= 2
		warnings = append(warnings, WarnDigitsOnly)
	}

	if hasRun(password, 3) {
		points--
		warnings = append(warnings, WarnRepeatedCharacters)
	}

	lowered := strings.ToLower(password)
	for _, prefix := range commonPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			points -= 2
			warnings = append(warnings, WarnCommonPattern)
			break
		}
	}

	score := points / 2
	if points < 0 {
		score = 0
	}
	score = min(score, len(strengthLabels)-1)

	return Strength{
		Score:    score,
		Label:    strengthLabels[score],
		Color:    strengthColors[score],
		Entropy:  float64(length) * math.Log2(float64(comp.poolSize())),
		Warnings: warnings,
	}
}
