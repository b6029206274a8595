// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package passforge

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// maxBound is the exclusive upper bound a single 32-bit draw can cover.
const maxBound = 1 << 32

var (
	// ErrEntropyUnavailable is returned when the entropy source cannot be read.
	ErrEntropyUnavailable = errors.New("entropy unavailable")
	// ErrInvalidArgument is returned when a bound or an option is malformed.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownDictionary is returned when no word list exists for a language.
	ErrUnknownDictionary = errors.New("unknown dictionary")
)

// operationError is an error that includes the operation name.
type operationError struct {
	operation string
	err       error
}

// Error returns the error message.
func (e *operationError) Error() string {
	if e.err == nil {
		return "op:" + e.operation + " - no error provided"
	}
	return "op:" + e.operation + " - " + e.err.Error()
}

// Unwrap returns the wrapped error.
func (e *operationError) Unwrap() error {
	return e.err
}

// Is returns true if the target error is the same as the wrapped error.
func (e *operationError) Is(target error) bool {
	return e.err == target
}

// Generator produces random credentials from a secure entropy source.
//
// A Generator carries no option state: every call receives its options as
// a value. The zero value is ready to use and reads from crypto/rand.
type Generator struct {
	// Entropy is the randomness source. Defaults to crypto/rand.Reader.
	Entropy io.Reader
}

// defaultGenerator backs the package-level helpers.
var defaultGenerator = &Generator{}

func (g *Generator) entropy() io.Reader {
	if g == nil || g.Entropy == nil {
		return rand.Reader
	}
	return g.Entropy
}

// Uniform returns an integer uniformly distributed in [0, n).
//
// Four bytes are drawn and read as a little-endian uint32. Draws at or above
// the largest multiple of n that fits in 2^32 are rejected and redrawn, so
// every result carries exactly the same probability mass.
func (g *Generator) Uniform(n int) (int, error) {
	// Check arguments
	switch {
	case n < 1:
		return 0, &operationError{"Uniform", fmt.Errorf("%w: bound %d must be positive", ErrInvalidArgument, n)}
	case uint64(n) > maxBound:
		return 0, &operationError{"Uniform", fmt.Errorf("%w: bound %d exceeds 2^32", ErrInvalidArgument, n)}
	case n == 1:
		return 0, nil
	}

	bound := uint64(n)
	limit := maxBound - (maxBound % bound)

	var buf [4]byte
	for {
		if _, err := io.ReadFull(g.entropy(), buf[:]); err != nil {
			return 0, &operationError{"Uniform", fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)}
		}

		r := uint64(binary.LittleEndian.Uint32(buf[:]))
		if r < limit {
			return int(r % bound), nil
		}
	}
}

// Shuffle permutes n elements with the Fisher-Yates algorithm. swap exchanges
// the elements at indexes i and j.
func (g *Generator) Shuffle(n int, swap func(i, j int)) error {
	if n < 0 {
		return &operationError{"Shuffle", fmt.Errorf("%w: negative length %d", ErrInvalidArgument, n)}
	}

	for i := n - 1; i > 0; i-- {
		j, err := g.Uniform(i + 1)
		if err != nil {
			return &operationError{"Shuffle", err}
		}
		swap(i, j)
	}

	return nil
}

// Permute returns a uniformly shuffled copy of in. The input is not modified.
func Permute[T any](g *Generator, in []T) ([]T, error) {
	out := make([]T, len(in))
	copy(out, in)

	if err := g.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	}); err != nil {
		return nil, err
	}

	return out, nil
}

// pick returns one uniformly chosen rune of alphabet.
func (g *Generator) pick(alphabet []rune) (rune, error) {
	idx, err := g.Uniform(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[idx], nil
}

// Uniform draws from crypto/rand. See Generator.Uniform.
func Uniform(n int) (int, error) {
	return defaultGenerator.Uniform(n)
}
