package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadQuestionsFile(t *testing.T) {
	path := writeTempFile(t, `{
		"q1": {"question": "2+2?", "answer": "4", "comment": "basic math"},
		"q2": {"question": "Capital of France?", "answer": "Paris", "source": "geo-pack"}
	}`)

	entries, err := ReadQuestionsFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "q1", entries[0].Label)
	assert.Equal(t, "2+2?", entries[0].Question)
	assert.Equal(t, "4", entries[0].Answer)
	assert.Equal(t, "basic math", entries[0].Comment)

	assert.Equal(t, "q2", entries[1].Label)
	assert.Equal(t, "geo-pack", entries[1].Extra["source"])
}

func TestReadQuestionsFilePreservesOrder(t *testing.T) {
	// Deliberately non-alphabetical labels: load order must follow the
	// document, not any map ordering.
	path := writeTempFile(t, `{
		"zeta": {"question": "first", "answer": "a"},
		"alpha": {"question": "second", "answer": "b"},
		"mid": {"question": "third", "answer": "c"}
	}`)

	entries, err := ReadQuestionsFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, []string{entries[0].Label, entries[1].Label, entries[2].Label})
}

func TestReadQuestionsFileMissing(t *testing.T) {
	_, err := ReadQuestionsFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadQuestionsFileMalformed(t *testing.T) {
	path := writeTempFile(t, `["not", "an", "object"]`)
	_, err := ReadQuestionsFile(path)
	require.Error(t, err)
}

func TestReadQuestionsFileTrailingData(t *testing.T) {
	path := writeTempFile(t, `{"q1": {"question": "2+2?", "answer": "4"}} {"q2": {}}`)
	_, err := ReadQuestionsFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing data")
}

func TestReadQuestionsFileMissingAnswer(t *testing.T) {
	path := writeTempFile(t, `{"q1": {"question": "2+2?"}}`)
	_, err := ReadQuestionsFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "q1")
}
