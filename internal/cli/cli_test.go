// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zntr.io/passforge"
)

// testApp returns an app isolated from the user configuration, the
// clipboard and the terminal.
func testApp(t *testing.T) *app {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	a := newApp()
	a.clipboard = func(string) error { return errors.New("no clipboard") }
	a.readSecret = func(string) (string, error) { return "", errors.New("no terminal") }
	return a
}

func run(t *testing.T, a *app, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := a.rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestPassword(t *testing.T) {
	t.Run("Flags", func(t *testing.T) {
		out, _, err := run(t, testApp(t), "", "password", "--length", "24", "--count", "3", "--special=false")
		require.NoError(t, err)

		values := lines(out)
		require.Len(t, values, 3)
		for _, v := range values {
			assert.Len(t, v, 24)
			assert.Regexp(t, `^[A-Za-z0-9]+$`, v)
		}
	})

	t.Run("ConfigFile", func(t *testing.T) {
		a := testApp(t)
		path := filepath.Join(t.TempDir(), "passforge.yaml")
		require.NoError(t, os.WriteFile(path, []byte("password:\n  length: 10\n"), 0o600))

		out, _, err := run(t, a, "", "--config", path, "password")
		require.NoError(t, err)
		assert.Len(t, strings.TrimSpace(out), 10)
	})

	t.Run("Environment", func(t *testing.T) {
		a := testApp(t)
		t.Setenv("PASSFORGE_PASSWORD_LENGTH", "12")

		out, _, err := run(t, a, "", "password")
		require.NoError(t, err)
		assert.Len(t, strings.TrimSpace(out), 12)
	})

	t.Run("InvalidCount", func(t *testing.T) {
		_, _, err := run(t, testApp(t), "", "password", "--count", "0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "count must be at least 1")
	})

	t.Run("Copy", func(t *testing.T) {
		a := testApp(t)
		var copied string
		a.clipboard = func(s string) error {
			copied = s
			return nil
		}

		out, stderr, err := run(t, a, "", "password", "--count", "2", "--copy")
		require.NoError(t, err)
		assert.Equal(t, strings.TrimRight(out, "\n"), copied)
		assert.Contains(t, stderr, "Copied to clipboard.")
	})

	t.Run("CopyFailure", func(t *testing.T) {
		out, stderr, err := run(t, testApp(t), "", "password", "--copy")
		require.NoError(t, err)
		assert.NotEmpty(t, out)
		assert.Contains(t, stderr, "Could not copy to clipboard: no clipboard")
	})
}

func TestPassphrase(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		out, _, err := run(t, testApp(t), "", "passphrase", "--words", "3", "--separator", "_")
		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimSpace(out), "_"), 3)
	})

	t.Run("KoreanDictionary", func(t *testing.T) {
		dict := filepath.Join(t.TempDir(), "ko.txt")
		require.NoError(t, os.WriteFile(dict, []byte("홍길동\n"), 0o600))

		out, _, err := run(t, testApp(t), "",
			"passphrase",
			"--language", "ko",
			"--words", "2",
			"--josa",
			"--romanize",
			"--capitalize=false",
			"--include-number=false",
			"--dictionary", dict,
		)
		require.NoError(t, err)
		assert.Equal(t, "ghdrlfehddl-ghdrlfehddmf\n", out)
	})

	t.Run("UnknownLanguage", func(t *testing.T) {
		_, _, err := run(t, testApp(t), "", "passphrase", "--language", "xx")
		assert.ErrorIs(t, err, passforge.ErrUnknownDictionary)
	})
}

func TestPin(t *testing.T) {
	out, _, err := run(t, testApp(t), "", "pin", "--length", "8", "-n", "4")
	require.NoError(t, err)

	values := lines(out)
	require.Len(t, values, 4)
	for _, v := range values {
		assert.Regexp(t, regexp.MustCompile(`^[0-9]{8}$`), v)
	}
}

func TestStrength(t *testing.T) {
	const password = "Tr0ub4dor&3xK9!mZq2#"

	t.Run("Text", func(t *testing.T) {
		out, _, err := run(t, testApp(t), "", "strength", password)
		require.NoError(t, err)
		assert.Contains(t, out, "Score: 3/4 (")
		assert.Contains(t, out, "Strong")
		assert.Contains(t, out, "Entropy: 131.4 bits")
	})

	t.Run("Korean", func(t *testing.T) {
		out, _, err := run(t, testApp(t), "", "--lang", "ko", "strength", "aaa")
		require.NoError(t, err)
		assert.Contains(t, out, "점수: 0/4 (")
		assert.Contains(t, out, "매우 약함")
		assert.Contains(t, out, "8자 미만입니다")
	})

	t.Run("JSON", func(t *testing.T) {
		out, _, err := run(t, testApp(t), "", "strength", "--json", password)
		require.NoError(t, err)

		var s passforge.Strength
		require.NoError(t, json.Unmarshal([]byte(out), &s))
		assert.Equal(t, passforge.CalculateStrength(password), s)
	})
}

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		out, _, err := run(t, testApp(t), "", "validate", "Tr0ub4dor&3")
		require.NoError(t, err)
		assert.Contains(t, out, "Password satisfies the policy.")
	})

	t.Run("Invalid", func(t *testing.T) {
		out, _, err := run(t, testApp(t), "", "validate", "--min-length", "12", "--require-special", "abcdefgh")
		require.Error(t, err)
		assert.ErrorIs(t, err, passforge.ErrTooShort)
		assert.ErrorIs(t, err, passforge.ErrMissingSpecial)
		assert.Contains(t, out, "too short")
		assert.Contains(t, out, "missing a special character")
	})
}

func TestEncryptDecrypt(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		sealed, _, err := run(t, testApp(t), "", "encrypt", "--passphrase", "pw", "hello", "world")
		require.NoError(t, err)

		out, _, err := run(t, testApp(t), "", "decrypt", "--passphrase", "pw", strings.TrimSpace(sealed))
		require.NoError(t, err)
		assert.Equal(t, "hello world\n", out)
	})

	t.Run("PromptAndStdin", func(t *testing.T) {
		a := testApp(t)
		a.readSecret = func(string) (string, error) { return "prompted", nil }

		sealed, _, err := run(t, a, "from stdin\n", "encrypt")
		require.NoError(t, err)

		out, _, err := run(t, a, sealed, "decrypt")
		require.NoError(t, err)
		assert.Equal(t, "from stdin\n", out)
	})

	t.Run("Mismatch", func(t *testing.T) {
		a := testApp(t)
		answers := []string{"first", "second"}
		a.readSecret = func(string) (string, error) {
			p := answers[0]
			answers = answers[1:]
			return p, nil
		}

		_, _, err := run(t, a, "", "encrypt", "secret")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "passphrases do not match")
	})

	t.Run("NoPassphrase", func(t *testing.T) {
		_, _, err := run(t, testApp(t), "", "encrypt", "secret")
		require.Error(t, err)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		_, _, err := run(t, testApp(t), "\n", "encrypt", "--passphrase", "pw")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nothing to process")
	})

	t.Run("WrongPassphrase", func(t *testing.T) {
		sealed, _, err := run(t, testApp(t), "", "encrypt", "-p", "right", "secret")
		require.NoError(t, err)

		_, _, err = run(t, testApp(t), "", "decrypt", "-p", "wrong", strings.TrimSpace(sealed))
		assert.ErrorIs(t, err, passforge.ErrDecryptionFailed)
	})
}

func TestHangul(t *testing.T) {
	t.Run("Decompose", func(t *testing.T) {
		out, _, err := run(t, testApp(t), "", "hangul", "decompose", "닭 a")
		require.NoError(t, err)
		assert.Equal(t, "닭\tㄷ ㅏ ㄺ\na\ta\n", out)
	})

	t.Run("Romanize", func(t *testing.T) {
		out, _, err := run(t, testApp(t), "", "hangul", "romanize", "홍길동")
		require.NoError(t, err)
		assert.Equal(t, "ghdrlfehd\n", out)
	})

	t.Run("JosaRelation", func(t *testing.T) {
		out, _, err := run(t, testApp(t), "", "hangul", "josa", "사과", "--relation", "object")
		require.NoError(t, err)
		assert.Equal(t, "사과를\n", out)
	})

	t.Run("JosaAll", func(t *testing.T) {
		out, _, err := run(t, testApp(t), "", "hangul", "josa", "물")
		require.NoError(t, err)

		values := lines(out)
		require.Len(t, values, 6)
		assert.Contains(t, values, "subject\t물이")
		assert.Contains(t, values, "directional\t물로")
	})

	t.Run("UnknownRelation", func(t *testing.T) {
		_, _, err := run(t, testApp(t), "", "hangul", "josa", "물", "-r", "vocative")
		require.Error(t, err)
	})
}

func TestConfig(t *testing.T) {
	a := testApp(t)
	path := filepath.Join(t.TempDir(), "conf", "passforge.yaml")

	out, _, err := run(t, a, "", "config", "init", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	_, _, err = run(t, a, "", "config", "init", "--path", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = run(t, a, "", "config", "init", "--path", path, "--force")
	require.NoError(t, err)

	out, _, err = run(t, a, "", "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "password:")
	assert.Contains(t, out, "num_words: 4")
}

func TestSetup(t *testing.T) {
	t.Run("InvalidLogLevel", func(t *testing.T) {
		_, _, err := run(t, testApp(t), "", "--log-level", "chatty", "pin")
		require.Error(t, err)
	})

	t.Run("MissingConfig", func(t *testing.T) {
		_, _, err := run(t, testApp(t), "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "pin")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
