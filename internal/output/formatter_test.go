// Copyright 2026 The Paymap Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface check.
var _ Formatter = (*stubFormatter)(nil)

type stubFormatter struct{}

func (s *stubFormatter) Name() string                             { return "stub" }
func (s *stubFormatter) Format(_ *MapDocument, _ io.Writer) error { return nil }

func TestFormatterInterface(t *testing.T) {
	var f Formatter = &stubFormatter{}
	assert.Equal(t, "stub", f.Name())

	var buf bytes.Buffer
	require.NoError(t, f.Format(nil, &buf))
}

func TestRegisterAndGetFormatter(t *testing.T) {
	resetFmtForTesting()
	t.Cleanup(func() {
		resetFmtForTesting()
		RegisterFormatter(NewHTMLFormatter())
		RegisterFormatter(NewJSONFormatter())
	})

	RegisterFormatter(&stubFormatter{})
	f, err := GetFormatter("stub")
	require.NoError(t, err)
	assert.Equal(t, "stub", f.Name())
}

func TestGetFormatter_UnknownListsAvailable(t *testing.T) {
	_, err := GetFormatter("pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format: "pdf"`)
	assert.Contains(t, err.Error(), "html")
	assert.Contains(t, err.Error(), "json")
}

func TestBuiltinFormattersRegistered(t *testing.T) {
	for _, name := range []string{"html", "json"} {
		f, err := GetFormatter(name)
		require.NoError(t, err, "formatter %q", name)
		assert.Equal(t, name, f.Name())
	}
}
