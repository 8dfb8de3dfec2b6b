package query

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "queries.yaml")
	require.NoError(t, os.WriteFile(path, []byte(batch), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	change, err := DetectChanges(ctx, path)
	require.NoError(t, err)

	// unrelated file in the same directory
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(batch), 0o644))

	select {
	case v := <-change:
		assert.True(t, v)
	case <-time.After(5 * time.Second):
		t.Fatal("change not detected")
	}

	cancel()
	for range change {
	}
}

func TestDetectChangesMissingDirectory(t *testing.T) {
	_, err := DetectChanges(context.Background(), filepath.Join(t.TempDir(), "nope", "queries.yaml"))
	assert.Error(t, err)
}
