// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Package hangul implements the Korean text helpers used by Korean
// passphrases.
//
// Decompose splits a precomposed syllable (U+AC00..U+D7A3) into its
// compatibility jamo: a leading consonant, a vowel and an optional trailing
// consonant. Romanize maps every jamo to the keys a typist presses on the
// two-set (dubeolsik) keyboard, so "홍길동" becomes "ghdrlfehd". AttachJosa
// appends the grammatical particle that agrees with the final sound of a
// word, for example "책상이" but "바다가".
//
// Every function is pure and total: characters outside the syllable block
// pass through unchanged.
package hangul
