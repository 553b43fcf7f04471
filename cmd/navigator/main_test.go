package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Tools: ")
	assert.Contains(t, out, "Kantonslizenz")
	assert.Contains(t, out, "taskcards")
}

func TestCheck_BadCatalog(t *testing.T) {
	_, err := run(t, "check", "--catalog", t.TempDir())
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.pdf")

	out, err := run(t, "export", "-o", target, "--lizenz", "Kostenlos", "--lernende")
	require.NoError(t, err)
	assert.Contains(t, out, target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestExport_InvalidFilter(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.pdf")

	_, err := run(t, "export", "-o", target, "--ki", "vielleicht")
	assert.Error(t, err)
	assert.NoFileExists(t, target)
}
