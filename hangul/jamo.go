// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package hangul

const (
	// SyllableBase is the first precomposed syllable, 가.
	SyllableBase = 0xAC00
	// SyllableLast is the last precomposed syllable, 힣.
	SyllableLast = 0xD7A3

	leadingCount  = 19
	vowelCount    = 21
	trailingCount = 28

	// SyllableCount is the size of the precomposed block.
	SyllableCount = leadingCount * vowelCount * trailingCount
)

// leading lists the 19 initial consonants in code point order.
var leading = [leadingCount]string{
	"ㄱ", "ㄲ", "ㄴ", "ㄷ", "ㄸ", "ㄹ", "ㅁ", "ㅂ", "ㅃ", "ㅅ",
	"ㅆ", "ㅇ", "ㅈ", "ㅉ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
}

// vowels lists the 21 medial vowels in code point order.
var vowels = [vowelCount]string{
	"ㅏ", "ㅐ", "ㅑ", "ㅒ", "ㅓ", "ㅔ", "ㅕ", "ㅖ", "ㅗ", "ㅘ",
	"ㅙ", "ㅚ", "ㅛ", "ㅜ", "ㅝ", "ㅞ", "ㅟ", "ㅠ", "ㅡ", "ㅢ", "ㅣ",
}

// trailing lists the 28 final consonants; index 0 is the absent final.
var trailing = [trailingCount]string{
	"", "ㄱ", "ㄲ", "ㄳ", "ㄴ", "ㄵ", "ㄶ", "ㄷ", "ㄹ", "ㄺ",
	"ㄻ", "ㄼ", "ㄽ", "ㄾ", "ㄿ", "ㅀ", "ㅁ", "ㅂ", "ㅄ", "ㅅ",
	"ㅆ", "ㅇ", "ㅈ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
}

// trailingRieul is the index of the plain liquid final ㄹ.
const trailingRieul = 8

// Syllable is a decomposed syllable expressed as table indexes.
type Syllable struct {
	Leading  int
	Vowel    int
	Trailing int
}

// IsSyllable reports whether r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= SyllableBase && r <= SyllableLast
}

// Split returns the jamo indexes of r. ok is false when r is not a
// precomposed syllable.
func Split(r rune) (s Syllable, ok bool) {
	if !IsSyllable(r) {
		return Syllable{}, false
	}

	offset := int(r - SyllableBase)
	return Syllable{
		Leading:  offset / (trailingCount * vowelCount),
		Vowel:    (offset / trailingCount) % vowelCount,
		Trailing: offset % trailingCount,
	}, true
}

// Rune composes the syllable back into its code point.
func (s Syllable) Rune() rune {
	return rune(SyllableBase + (s.Leading*vowelCount+s.Vowel)*trailingCount + s.Trailing)
}

// HasTrailing reports whether the syllable ends with a consonant.
func (s Syllable) HasTrailing() bool {
	return s.Trailing > 0
}

// Jamo returns the two or three jamo of the syllable.
func (s Syllable) Jamo() []string {
	out := []string{leading[s.Leading], vowels[s.Vowel]}
	if s.Trailing > 0 {
		out = append(out, trailing[s.Trailing])
	}
	return out
}

// Decompose returns the jamo of a precomposed syllable, or the character
// itself when it lies outside the syllable block.
func Decompose(r rune) []string {
	s, ok := Split(r)
	if !ok {
		return []string{string(r)}
	}
	return s.Jamo()
}

// Compose is the inverse of Decompose for two or three jamo. ok is false
// when a jamo is not valid for its position.
func Compose(jamo []string) (r rune, ok bool) {
	if len(jamo) < 2 || len(jamo) > 3 {
		return 0, false
	}

	var s Syllable
	if s.Leading, ok = indexOf(leading[:], jamo[0]); !ok {
		return 0, false
	}
	if s.Vowel, ok = indexOf(vowels[:], jamo[1]); !ok {
		return 0, false
	}
	if len(jamo) == 3 {
		if s.Trailing, ok = indexOf(trailing[1:], jamo[2]); !ok {
			return 0, false
		}
		s.Trailing++
	}

	return s.Rune(), true
}

func indexOf(table []string, jamo string) (int, bool) {
	for i, j := range table {
		if j == jamo {
			return i, true
		}
	}
	return 0, false
}
