package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_WriteAll_CreatesTree(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	artifacts := []Artifact{
		{Path: "common.puml", Content: "@startuml\n@enduml\n"},
		{Path: "storage/amazons3/bucket.puml", Content: "!define BUCKET(alias)\n"},
		{Path: "storage/amazons3/all.puml", Content: "!include ./bucket.puml\n"},
	}

	err := NewSink(root).WriteAll(artifacts)

	require.NoError(t, err)

	for _, artifact := range artifacts {
		data, readErr := os.ReadFile(filepath.Join(root, filepath.FromSlash(artifact.Path)))

		require.NoError(t, readErr)
		assert.Equal(t, artifact.Content, string(data))
	}
}

func TestWriteFileAtomic_ReplacesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pumlgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	err := WriteFileAtomic(path, []byte("new"))

	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFileAtomic_LeavesNoTempFileBehind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.puml")

	require.NoError(t, WriteFileAtomic(path, []byte("content")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.puml", entries[0].Name())
}
