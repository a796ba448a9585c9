package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quiz-forge/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestKeywordsCommand(t *testing.T) {
	out, err := run(t, "", "keywords", "Communication communication COMMUNICATION system analysis")
	require.NoError(t, err)
	assert.Equal(t, "communication\nsystem\nanalysis\n", out)
}

func TestKeywordsCommand_Stdin(t *testing.T) {
	out, err := run(t, "alpha alpha bravo", "keywords", "--top-n", "1")
	require.NoError(t, err)
	assert.Equal(t, "alpha\n", out)
}

func TestGenerateCommand_BlankInput(t *testing.T) {
	out, err := run(t, "   \n", "generate")
	require.NoError(t, err)
	assert.Equal(t, "Warning: Please enter some text.\n", out)
}

func TestGenerateCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat dog run"), 0o600))

	out, err := run(t, "", "generate", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1. Explain the significance of topic in the context of the provided topic.")
	assert.Contains(t, out, "Answer: Concept A")
	assert.Equal(t, 3, strings.Count(out, "---\n"))
}

func TestGenerateCommand_JSONWithSeed(t *testing.T) {
	first, err := run(t, "", "generate", "--json", "--seed", "11", "photosynthesis converts light energy")
	require.NoError(t, err)
	second, err := run(t, "", "generate", "--json", "--seed", "11", "photosynthesis converts light energy")
	require.NoError(t, err)

	var a, b dto.GenerateResponse
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	assert.Equal(t, a.MCQs, b.MCQs)
	assert.Equal(t, []string{"photosynthesis", "converts", "light", "energy"}, a.Keywords)
}

func TestGenerateCommand_MissingFile(t *testing.T) {
	_, err := run(t, "", "generate", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestGenerateCommand_InvalidTopN(t *testing.T) {
	_, err := run(t, "", "generate", "--top-n=-2", "some words here")
	assert.Error(t, err)
}
