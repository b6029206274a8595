// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package passforge

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// leetReplacer substitutes look-alike digits for letters.
var leetReplacer = strings.NewReplacer(
	"a", "4", "A", "4",
	"e", "3", "E", "3",
	"i", "1", "I", "1",
	"o", "0", "O", "0",
	"s", "5", "S", "5",
	"t", "7", "T", "7",
	"b", "8", "B", "8",
	"g", "9", "G", "9",
	"l", "1", "L", "1",
	"z", "2", "Z", "2",
)

// LeetSpeak replaces letters with their look-alike digits.
func LeetSpeak(text string) string {
	return leetReplacer.Replace(text)
}

// CaseType selects a case transformation.
type CaseType uint8

const (
	// LowerCase lowers every character.
	LowerCase CaseType = iota
	// UpperCase uppercases every character.
	UpperCase
	// TitleCase uppercases the first character and lowers the rest.
	TitleCase
)

// ParseCaseType resolves "lowercase", "uppercase" or "titlecase".
func ParseCaseType(name string) (CaseType, error) {
	switch strings.ToLower(name) {
	case "lowercase", "lower":
		return LowerCase, nil
	case "uppercase", "upper":
		return UpperCase, nil
	case "titlecase", "title":
		return TitleCase, nil
	}
	return 0, &operationError{"ParseCaseType", fmt.Errorf("%w: unknown case %q", ErrInvalidArgument, name)}
}

// TransformCase applies the case transformation to text. Unknown case types
// return text unchanged.
func TransformCase(text string, c CaseType) string {
	if text == "" {
		return text
	}

	switch c {
	case LowerCase:
		return cases.Lower(language.Und).String(text)
	case UpperCase:
		return cases.Upper(language.Und).String(text)
	case TitleCase:
		_, size := utf8.DecodeRuneInString(text)
		return capitalize(text[:size], language.Und) + cases.Lower(language.Und).String(text[size:])
	default:
		return text
	}
}
