// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package passforge

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

// AEAD identifies the cipher recorded in a sealed envelope. Values are
// persisted and must not be renumbered.
type AEAD uint8

const (
	// AESGCM is AES-256-GCM with a 96-bit random nonce.
	AESGCM AEAD = iota
	// CHACHAPOLY is XChaCha20-Poly1305 with a 192-bit random nonce.
	CHACHAPOLY
)

// aeadCipher builds an AEAD from a 256-bit key.
type aeadCipher struct {
	name  string
	build func(key []byte) (cipher.AEAD, error)
}

var aeadRegistry = map[AEAD]aeadCipher{
	AESGCM: {
		name: "aes-gcm",
		build: func(key []byte) (cipher.AEAD, error) {
			block, err := aes.NewCipher(key)
			if err != nil {
				return nil, &operationError{"aes-gcm", err}
			}
			aead, err := cipher.NewGCM(block)
			if err != nil {
				return nil, &operationError{"aes-gcm", err}
			}
			return aead, nil
		},
	},
	CHACHAPOLY: {
		name: "xchacha20-poly1305",
		build: func(key []byte) (cipher.AEAD, error) {
			aead, err := chacha20poly1305.NewX(key)
			if err != nil {
				return nil, &operationError{"xchacha20-poly1305", err}
			}
			return aead, nil
		},
	},
}

// String returns the name accepted by ParseAEAD.
func (a AEAD) String() string {
	if c, ok := aeadRegistry[a]; ok {
		return c.name
	}
	return fmt.Sprintf("AEAD(%d)", uint8(a))
}

// ParseAEAD resolves a cipher by its case-insensitive name.
func ParseAEAD(name string) (AEAD, error) {
	for a, c := range aeadRegistry {
		if strings.EqualFold(c.name, name) {
			return a, nil
		}
	}
	return 0, &operationError{"ParseAEAD", fmt.Errorf("%w: unknown cipher %q", ErrInvalidArgument, name)}
}
