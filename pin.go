// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package passforge

// DefaultPinLength is the PIN length used when none is configured.
const DefaultPinLength = 6

// Pin returns length uniformly drawn decimal digits.
func (g *Generator) Pin(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}

	digits := []rune(numbersAlphabet)
	out := make([]rune, length)
	for i := range out {
		r, err := g.pick(digits)
		if err != nil {
			return "", &operationError{"Pin", err}
		}
		out[i] = r
	}

	return string(out), nil
}

// GeneratePin returns a PIN drawn from crypto/rand.
func GeneratePin(length int) (string, error) {
	return defaultGenerator.Pin(length)
}
