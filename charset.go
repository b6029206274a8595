// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package passforge

// CharClass identifies one character class of a password alphabet.
type CharClass uint8

const (
	// Uppercase is the A-Z class.
	Uppercase CharClass = iota
	// Lowercase is the a-z class.
	Lowercase
	// Numbers is the 0-9 class.
	Numbers
	// Special is the punctuation class.
	Special
)

// Alphabets with and without the visually confusable glyphs 0/O, 1/l/I.
const (
	uppercaseAlphabet            = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	uppercaseUnambiguousAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ"
	lowercaseAlphabet            = "abcdefghijklmnopqrstuvwxyz"
	lowercaseUnambiguousAlphabet = "abcdefghjkmnpqrstuvwxyz"
	numbersAlphabet              = "0123456789"
	numbersUnambiguousAlphabet   = "23456789"
	specialAlphabet              = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

var classAlphabets = map[CharClass][2]string{
	Uppercase: {uppercaseUnambiguousAlphabet, uppercaseAlphabet},
	Lowercase: {lowercaseUnambiguousAlphabet, lowercaseAlphabet},
	Numbers:   {numbersUnambiguousAlphabet, numbersAlphabet},
	Special:   {specialAlphabet, specialAlphabet},
}

// Alphabet returns the characters of the class. When ambiguous is false the
// confusable glyphs are dropped.
func (c CharClass) Alphabet(ambiguous bool) string {
	pair, ok := classAlphabets[c]
	if !ok {
		return ""
	}
	if ambiguous {
		return pair[1]
	}
	return pair[0]
}

// String returns the class name.
func (c CharClass) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Numbers:
		return "numbers"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}
