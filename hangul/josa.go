// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package hangul

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Relation is the grammatical role marked by a particle.
type Relation uint8

const (
	// Subject selects 이/가.
	Subject Relation = iota
	// Object selects 을/를.
	Object
	// Topic selects 은/는.
	Topic
	// Conjunctive selects 과/와.
	Conjunctive
	// Directional selects 으로/로.
	Directional
	// Possessive selects 의.
	Possessive
)

// Relations is the order in which passphrase words receive particles.
var Relations = [...]Relation{Subject, Object, Conjunctive, Directional, Topic, Possessive}

var relationNames = map[Relation]string{
	Subject:     "subject",
	Object:      "object",
	Topic:       "topic",
	Conjunctive: "conjunctive",
	Directional: "directional",
	Possessive:  "possessive",
}

// String returns the relation name.
func (r Relation) String() string {
	if name, ok := relationNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Relation(%d)", uint8(r))
}

// ParseRelation resolves a relation name. "and" and "direction" are
// accepted as aliases.
func ParseRelation(name string) (Relation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "subject":
		return Subject, nil
	case "object":
		return Object, nil
	case "topic":
		return Topic, nil
	case "conjunctive", "and":
		return Conjunctive, nil
	case "directional", "direction":
		return Directional, nil
	case "possessive":
		return Possessive, nil
	}
	return 0, fmt.Errorf("unknown josa relation %q", name)
}

// Ending is the phonological class of the last sound of a word.
type Ending uint8

const (
	// VowelEnding words end with a vowel.
	VowelEnding Ending = iota
	// ConsonantEnding words end with a final consonant other than ㄹ.
	ConsonantEnding
	// LiquidEnding words end with the final ㄹ.
	LiquidEnding
)

// digitEndings follows the Korean reading of each digit:
// 영 일 이 삼 사 오 육 칠 팔 구.
var digitEndings = [10]Ending{
	ConsonantEnding, LiquidEnding, VowelEnding, ConsonantEnding, VowelEnding,
	VowelEnding, ConsonantEnding, LiquidEnding, LiquidEnding, VowelEnding,
}

// EndingOf classifies the final character of word. Empty words and
// characters that are neither syllables nor digits count as vowel endings.
func EndingOf(word string) Ending {
	last, size := utf8.DecodeLastRuneInString(word)
	if size == 0 {
		return VowelEnding
	}

	switch {
	case last >= '0' && last <= '9':
		return digitEndings[last-'0']
	case IsSyllable(last):
		s, _ := Split(last)
		switch {
		case !s.HasTrailing():
			return VowelEnding
		case s.Trailing == trailingRieul:
			return LiquidEnding
		default:
			return ConsonantEnding
		}
	default:
		return VowelEnding
	}
}

// particle holds the forms of one particle.
type particle struct {
	vowel     string
	consonant string
	liquid    string
}

// Only the directional particle treats ㄹ like a vowel ending.
var particles = map[Relation]particle{
	Subject:     {vowel: "가", consonant: "이", liquid: "이"},
	Object:      {vowel: "를", consonant: "을", liquid: "을"},
	Topic:       {vowel: "는", consonant: "은", liquid: "은"},
	Conjunctive: {vowel: "와", consonant: "과", liquid: "과"},
	Directional: {vowel: "로", consonant: "으로", liquid: "로"},
	Possessive:  {vowel: "의", consonant: "의", liquid: "의"},
}

// Particle returns the particle for the relation after a word of the given
// ending. Unknown relations yield an empty particle.
func Particle(rel Relation, ending Ending) string {
	p, ok := particles[rel]
	if !ok {
		return ""
	}

	switch ending {
	case ConsonantEnding:
		return p.consonant
	case LiquidEnding:
		return p.liquid
	default:
		return p.vowel
	}
}

// AttachJosa appends the particle for rel that agrees with the last sound
// of word.
func AttachJosa(word string, rel Relation) string {
	return word + Particle(rel, EndingOf(word))
}
