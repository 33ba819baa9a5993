package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPaths(t *testing.T, names ...string) []Path {
	t.Helper()

	paths := make([]Path, 0, len(names))

	for _, name := range names {
		path, err := ParsePath(name)
		require.NoError(t, err)

		paths = append(paths, path)
	}

	return paths
}

func sectionNames(store *Store) []string {
	raw := store.Raw()

	names := make([]string, 0, len(raw))
	for _, section := range raw {
		names = append(names, section.Name)
	}

	return names
}

func TestReconcile_AddsRemovesAndPreserves(t *testing.T) {
	t.Parallel()

	// Discovered {A, A.B.} against existing {A, A.C., colors}: A kept
	// unchanged, A.B. added empty, A.C. removed, colors preserved.
	store, err := Load([]RawSection{
		{Name: "A", Options: map[string]string{"entity_type": "node"}},
		{Name: "A.C.", Options: map[string]string{"color": "red"}},
		{Name: "colors", Options: map[string]string{"Orange": "#FFA500"}},
	})
	require.NoError(t, err)

	out := Reconcile(store, mustPaths(t, "A", "A.B."))

	assert.Equal(t, []string{AliasSection, "A", "A.B."}, sectionNames(out))

	kept, ok := out.Lookup(mustPaths(t, "A")[0])
	require.True(t, ok)
	assert.Equal(t, map[string]string{"entity_type": "node"}, kept)

	added, ok := out.Lookup(mustPaths(t, "A.B.")[0])
	require.True(t, ok)
	assert.Empty(t, added)

	_, gone := out.Lookup(mustPaths(t, "A.C.")[0])
	assert.False(t, gone)

	assert.Equal(t, "#FFA500", out.Aliases()["orange"])
}

func TestReconcile_Idempotent(t *testing.T) {
	t.Parallel()

	store, err := Load([]RawSection{
		{Name: "Compute", Options: map[string]string{"color": "orange"}},
		{Name: "Legacy", Options: map[string]string{"color": "grey"}},
	})
	require.NoError(t, err)

	discovered := mustPaths(t, "Compute", "Compute.AWSLambda.", "Storage")

	once := Reconcile(store, discovered)
	twice := Reconcile(once, discovered)

	assert.Equal(t, once.Raw(), twice.Raw())
}

func TestReconcile_OutputOrderIsStable(t *testing.T) {
	t.Parallel()

	store, err := Load(nil)
	require.NoError(t, err)

	out := Reconcile(store, mustPaths(t,
		"Storage.AmazonS3.Bucket",
		"Compute",
		"Storage",
		"Compute.AWSLambda.",
		"Storage.AmazonS3.",
	))

	assert.Equal(t, []string{
		"Compute",
		"Compute.AWSLambda.",
		"Storage",
		"Storage.AmazonS3.",
		"Storage.AmazonS3.Bucket",
	}, sectionNames(out))
}

func TestReconcile_NeverMutatesRetainedOptionValues(t *testing.T) {
	t.Parallel()

	store, err := Load([]RawSection{
		{Name: "Compute", Options: map[string]string{"color": "${colors:Orange}", "note": "hand-written"}},
	})
	require.NoError(t, err)

	out := Reconcile(store, mustPaths(t, "Compute"))

	kept, ok := out.Lookup(mustPaths(t, "Compute")[0])
	require.True(t, ok)
	assert.Equal(t, map[string]string{"color": "${colors:Orange}", "note": "hand-written"}, kept)
}

func TestReconcile_PreservesEmptyColorsSection(t *testing.T) {
	t.Parallel()

	store, err := Load([]RawSection{
		{Name: "colors", Options: map[string]string{}},
		{Name: "Legacy", Options: map[string]string{"color": "grey"}},
	})
	require.NoError(t, err)

	out := Reconcile(store, mustPaths(t, "Compute"))

	assert.Equal(t, []string{AliasSection, "Compute"}, sectionNames(out))
	assert.Empty(t, out.Raw()[0].Options)
}
