// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package passforge

import (
	"crypto/sha512"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// KDF identifies the passphrase key derivation recorded in a sealed
// envelope. Values are persisted and must not be renumbered.
type KDF uint8

const (
	// SCRYPT is scrypt with N=2^15, r=8 and p=1.
	SCRYPT KDF = iota
	// PBKDF2 is PBKDF2-HMAC-SHA512 with 250000 iterations.
	PBKDF2
	// ARGON2ID is Argon2id with 4 passes over 64 MiB on 4 lanes.
	ARGON2ID
)

const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1

	pbkdf2Iterations = 250000

	argon2Time    = 4
	argon2Memory  = 64 * 1024
	argon2Threads = 4
)

// keyDerivation stretches a passphrase into a key of keyLen bytes.
type keyDerivation struct {
	name   string
	derive func(passphrase, salt []byte, keyLen int) ([]byte, error)
}

var kdfRegistry = map[KDF]keyDerivation{
	SCRYPT: {
		name: "scrypt",
		derive: func(passphrase, salt []byte, keyLen int) ([]byte, error) {
			return scrypt.Key(passphrase, salt, scryptN, scryptR, scryptP, keyLen)
		},
	},
	PBKDF2: {
		name: "pbkdf2",
		derive: func(passphrase, salt []byte, keyLen int) ([]byte, error) {
			return pbkdf2.Key(passphrase, salt, pbkdf2Iterations, keyLen, sha512.New), nil
		},
	},
	ARGON2ID: {
		name: "argon2id",
		derive: func(passphrase, salt []byte, keyLen int) ([]byte, error) {
			return argon2.IDKey(passphrase, salt, argon2Time, argon2Memory, argon2Threads, uint32(keyLen)), nil
		},
	},
}

// String returns the name accepted by ParseKDF.
func (k KDF) String() string {
	if d, ok := kdfRegistry[k]; ok {
		return d.name
	}
	return fmt.Sprintf("KDF(%d)", uint8(k))
}

// ParseKDF resolves a key derivation by its case-insensitive name.
func ParseKDF(name string) (KDF, error) {
	for k, d := range kdfRegistry {
		if strings.EqualFold(d.name, name) {
			return k, nil
		}
	}
	return 0, &operationError{"ParseKDF", fmt.Errorf("%w: unknown key derivation %q", ErrInvalidArgument, name)}
}
