// SPDX-FileCopyrightText: 2024 Thibault NORMAND <me@zenithar.org>
//
// SPDX-License-Identifier: Apache-2.0 AND MIT

package logging

import (
	"bytes"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swap replaces L with a buffer-backed logger for the duration of the test.
func swap(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	t.Cleanup(func() { L = prev })

	return &buf
}

func TestHelpers(t *testing.T) {
	buf := swap(t)
	L.SetLevel(clog.DebugLevel)

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	assert.Contains(t, out, "hello dbg")
	assert.Contains(t, out, "info 1")
	assert.Contains(t, out, "warn")
	assert.Contains(t, out, "err E")
}

func TestSetLevel(t *testing.T) {
	buf := swap(t)

	require.NoError(t, SetLevel("error"))
	assert.Equal(t, clog.ErrorLevel, L.GetLevel())

	Infof("hidden")
	Errorf("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	require.Error(t, SetLevel("chatty"))
	assert.Equal(t, clog.ErrorLevel, L.GetLevel())
}
