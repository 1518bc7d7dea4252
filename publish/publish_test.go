package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnLonginotto/ACGTrie/acgtrie"
)

type memStore struct {
	blobs map[string][]byte
	tags  map[string]map[string]string
	fail  string
}

func (m *memStore) put(_ context.Context, blobPath string, data []byte, tags map[string]string) error {
	if blobPath == m.fail {
		return errors.New("boom")
	}
	m.blobs[blobPath] = data
	m.tags[blobPath] = tags
	return nil
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}, tags: map[string]map[string]string{}}
}

func writeFiles(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	var files []string
	for _, n := range names {
		p := filepath.Join(dir, n)
		require.NoError(t, os.WriteFile(p, []byte(n), 0o644))
		files = append(files, p)
	}
	return files
}

func TestPublish(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	store := newMemStore()
	p := NewPublisher(PublisherConfig{Prefix: "builds/b1"}, logger.Sugar.WithServiceName("publish"), store.put)
	files := writeFiles(t, "reads.A", "reads.manifest")

	id := uuid.New()
	tags := Tags(id, 12, acgtrie.ModeSuffixes)
	written, err := p.Publish(context.Background(), files, tags)
	require.NoError(t, err)
	assert.Equal(t, []string{"builds/b1/reads.A", "builds/b1/reads.manifest"}, written)

	assert.Equal(t, []byte("reads.A"), store.blobs["builds/b1/reads.A"])
	assert.Equal(t, id.String(), store.tags["builds/b1/reads.manifest"][TagBuild])
	assert.Equal(t, "12", store.tags["builds/b1/reads.manifest"][TagRows])
	assert.Equal(t, "suffixes", store.tags["builds/b1/reads.A"][TagMode])
}

func TestPublishStopsOnError(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	store := newMemStore()
	store.fail = "x/b"
	p := NewPublisher(PublisherConfig{Prefix: "x"}, logger.Sugar.WithServiceName("publish"), store.put)
	files := writeFiles(t, "a", "b", "c")

	written, err := p.Publish(context.Background(), files, nil)
	require.Error(t, err)
	assert.Equal(t, []string{"x/a"}, written)
	assert.NotContains(t, store.blobs, "x/c")

	_, err = p.Publish(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}
