// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Package passforge generates human-usable credentials from a secure
// entropy source.
//
// Every random choice goes through Generator.Uniform, which rejects the
// draws that would introduce modulo bias, so the selection of characters,
// words and digits is exactly uniform. Passwords guarantee per-class
// minimum counts and are shuffled afterwards so that required characters
// are not front-loaded. Passphrases draw dictionary words (BIP-39 word
// lists by default) and can decorate them with capitalization and a digit.
// Korean passphrases can additionally receive grammatical particles and be
// romanized as two-set keyboard keystrokes, see the hangul package.
//
// The package also carries small collaborators around generation: a
// heuristic strength rating, a policy validator and a passphrase-based
// Sealer to encrypt a generated secret.
package passforge
