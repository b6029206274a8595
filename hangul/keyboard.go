// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package hangul

import "strings"

// keystrokes maps a jamo to its keys on the two-set keyboard. Tense
// consonants and the ㅒ/ㅖ vowels are shifted keys, compound vowels and
// compound finals are the two keys typed in sequence.
var keystrokes = map[string]string{
	// Consonants
	"ㄱ": "r", "ㄲ": "R", "ㄴ": "s", "ㄷ": "e", "ㄸ": "E", "ㄹ": "f",
	"ㅁ": "a", "ㅂ": "q", "ㅃ": "Q", "ㅅ": "t", "ㅆ": "T", "ㅇ": "d",
	"ㅈ": "w", "ㅉ": "W", "ㅊ": "c", "ㅋ": "z", "ㅌ": "x", "ㅍ": "v", "ㅎ": "g",

	// Vowels
	"ㅏ": "k", "ㅐ": "o", "ㅑ": "i", "ㅒ": "O", "ㅓ": "j", "ㅔ": "p",
	"ㅕ": "u", "ㅖ": "P", "ㅗ": "h", "ㅘ": "hk", "ㅙ": "ho", "ㅚ": "hl",
	"ㅛ": "y", "ㅜ": "n", "ㅝ": "nj", "ㅞ": "np", "ㅟ": "nl", "ㅠ": "b",
	"ㅡ": "m", "ㅢ": "ml", "ㅣ": "l",

	// Compound finals
	"ㄳ": "rt", "ㄵ": "sw", "ㄶ": "sg", "ㄺ": "fr", "ㄻ": "fa", "ㄼ": "fq",
	"ㄽ": "ft", "ㄾ": "fx", "ㄿ": "fv", "ㅀ": "fg", "ㅄ": "qt",
}

// Keystrokes returns the keys for a single jamo. Unknown input is returned
// unchanged.
func Keystrokes(jamo string) string {
	if keys, ok := keystrokes[jamo]; ok {
		return keys
	}
	return jamo
}

// Romanize rewrites text as the ASCII keys typed on a two-set keyboard,
// left to right. Characters outside the syllable block pass through.
func Romanize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	for _, r := range text {
		for _, jamo := range Decompose(r) {
			sb.WriteString(Keystrokes(jamo))
		}
	}

	return sb.String()
}
