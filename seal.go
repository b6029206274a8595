// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package passforge

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

const (
	// sealVersion is the envelope format version.
	sealVersion = 1
	// sealHeaderSize is VERSION || KDF || AEAD.
	sealHeaderSize = 3
	// sealSaltSize is the size of the key derivation salt in bytes.
	sealSaltSize = 16
	// sealKeySize is the size of the derived key in bytes.
	sealKeySize = 32
	// maxPlaintextSize is the maximum size of the plaintext in bytes.
	maxPlaintextSize = 64 * 1024
)

var (
	// ErrEmptyPassphrase is returned when the passphrase is empty.
	ErrEmptyPassphrase = errors.New("empty passphrase")
	// ErrEmptyPlaintext is returned when there is nothing to encrypt.
	ErrEmptyPlaintext = errors.New("empty plaintext")
	// ErrPlaintextTooLong is returned when the plaintext is too long.
	ErrPlaintextTooLong = errors.New("plaintext too long")
	// ErrCiphertextTooShort is returned when the envelope is truncated.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	// ErrUnsupportedFormat is returned for an unknown envelope version or
	// algorithm.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrDecryptionFailed is returned when the passphrase is wrong or the
	// envelope was tampered with.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// Sealer encrypts text under a key derived from a passphrase.
//
// The result is the unpadded standard base64 encoding of
// VERSION || KDF || AEAD || SALT || NONCE || CIPHERTEXT, where the three
// header bytes are authenticated as additional data. Decrypt reads the
// algorithms from the header, so the Sealer settings only affect Encrypt.
type Sealer struct {
	// KeyDerivation is the key derivation function.
	KeyDerivation KDF
	// Encryption is the authenticated encryption with associated data.
	Encryption AEAD
	// Entropy is the salt and nonce source. Defaults to crypto/rand.Reader.
	Entropy io.Reader
}

func (s *Sealer) entropy() io.Reader {
	if s.Entropy == nil {
		return rand.Reader
	}
	return s.Entropy
}

// deriveAEAD builds the cipher for the given algorithms.
func deriveAEAD(kdf KDF, enc AEAD, passphrase, salt []byte) (cipher.AEAD, error) {
	derivation, ok := kdfRegistry[kdf]
	if !ok {
		return nil, fmt.Errorf("%w: key derivation %s", ErrUnsupportedFormat, kdf)
	}
	key, err := derivation.derive(passphrase, salt, sealKeySize)
	if err != nil {
		return nil, fmt.Errorf("encryption key error: %w", err)
	}
	defer clear(key)

	c, ok := aeadRegistry[enc]
	if !ok {
		return nil, fmt.Errorf("%w: cipher %s", ErrUnsupportedFormat, enc)
	}
	return c.build(key)
}

// Encrypt seals plaintext with a key derived from passphrase.
func (s *Sealer) Encrypt(plaintext, passphrase string) (string, error) {
	// Check arguments
	switch {
	case len(passphrase) == 0:
		return "", &operationError{"Encrypt", ErrEmptyPassphrase}
	case len(plaintext) == 0:
		return "", &operationError{"Encrypt", ErrEmptyPlaintext}
	case len(plaintext) > maxPlaintextSize:
		return "", &operationError{"Encrypt", ErrPlaintextTooLong}
	}

	header := []byte{sealVersion, byte(s.KeyDerivation), byte(s.Encryption)}

	salt := make([]byte, sealSaltSize)
	if _, err := io.ReadFull(s.entropy(), salt); err != nil {
		return "", &operationError{"Encrypt", fmt.Errorf("%w: salt generation: %w", ErrEntropyUnavailable, err)}
	}

	aead, err := deriveAEAD(s.KeyDerivation, s.Encryption, []byte(passphrase), salt)
	if err != nil {
		return "", &operationError{"Encrypt", err}
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(s.entropy(), nonce); err != nil {
		return "", &operationError{"Encrypt", fmt.Errorf("%w: nonce generation: %w", ErrEntropyUnavailable, err)}
	}

	// HEADER || SALT || NONCE || CIPHERTEXT
	final := make([]byte, 0, sealHeaderSize+sealSaltSize+len(nonce)+len(plaintext)+aead.Overhead())
	final = append(final, header...)
	final = append(final, salt...)
	final = append(final, nonce...)
	final = aead.Seal(final, nonce, []byte(plaintext), header)

	return base64.RawStdEncoding.EncodeToString(final), nil
}

// Decrypt opens an envelope produced by Encrypt.
func (s *Sealer) Decrypt(encoded, passphrase string) (string, error) {
	if len(passphrase) == 0 {
		return "", &operationError{"Decrypt", ErrEmptyPassphrase}
	}

	raw, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil {
		return "", &operationError{"Decrypt", fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)}
	}

	if len(raw) < sealHeaderSize+sealSaltSize {
		return "", &operationError{"Decrypt", ErrCiphertextTooShort}
	}
	header := raw[:sealHeaderSize]
	if header[0] != sealVersion {
		return "", &operationError{"Decrypt", fmt.Errorf("%w: version %d", ErrUnsupportedFormat, header[0])}
	}
	salt := raw[sealHeaderSize : sealHeaderSize+sealSaltSize]

	aead, err := deriveAEAD(KDF(header[1]), AEAD(header[2]), []byte(passphrase), salt)
	if err != nil {
		return "", &operationError{"Decrypt", err}
	}

	body := raw[sealHeaderSize+sealSaltSize:]
	if len(body) < aead.NonceSize()+aead.Overhead() {
		return "", &operationError{"Decrypt", ErrCiphertextTooShort}
	}
	nonce, ciphertext := body[:aead.NonceSize()], body[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, header)
	if err != nil {
		return "", &operationError{"Decrypt", ErrDecryptionFailed}
	}

	return string(plaintext), nil
}

// Encrypt seals plaintext with the default algorithms.
func Encrypt(plaintext, passphrase string) (string, error) {
	return (&Sealer{}).Encrypt(plaintext, passphrase)
}

// Decrypt opens an envelope produced by Encrypt.
func Decrypt(encoded, passphrase string) (string, error) {
	return (&Sealer{}).Decrypt(encoded, passphrase)
}
