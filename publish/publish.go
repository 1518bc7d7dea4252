// Package publish uploads the files of a build to blob storage.
package publish

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"

	"github.com/JohnLonginotto/ACGTrie/acgtrie"
)

const (
	TagBuild = "acgtrie-build"
	TagRows  = "acgtrie-rows"
	TagMode  = "acgtrie-mode"
)

// PutFunc stores data at blobPath with the given blob index tags.
type PutFunc func(ctx context.Context, blobPath string, data []byte, tags map[string]string) error

// StorerPut adapts an azblob store. Unless overwrite is set, a put fails if
// the blob already exists.
func StorerPut(store *azblob.Storer, overwrite bool) PutFunc {
	return func(ctx context.Context, blobPath string, data []byte, tags map[string]string) error {
		opts := []azblob.Option{azblob.WithTags(tags)}
		if !overwrite {
			// no blob matches *any* etag
			opts = append(opts, azblob.WithEtagNoneMatch("*"))
		}
		_, err := store.Put(ctx, blobPath, azblob.NewBytesReaderCloser(data), opts...)
		return err
	}
}

// NewDevStorer connects to the blob emulator configured in the environment.
func NewDevStorer(container string) (*azblob.Storer, error) {
	return azblob.NewDev(azblob.NewDevConfigFromEnv(), container)
}

type PublisherConfig struct {
	// Prefix is prepended to the base name of every uploaded file.
	Prefix string
}

type Publisher struct {
	Cfg PublisherConfig
	Log logger.Logger
	Put PutFunc
}

func NewPublisher(cfg PublisherConfig, log logger.Logger, put PutFunc) *Publisher {
	return &Publisher{
		Cfg: cfg,
		Log: log,
		Put: put,
	}
}

// Tags returns the blob tags identifying a build.
func Tags(buildID uuid.UUID, rows uint64, mode acgtrie.Mode) map[string]string {
	return map[string]string{
		TagBuild: buildID.String(),
		TagRows:  strconv.FormatUint(rows, 10),
		TagMode:  mode.String(),
	}
}

// BlobPath returns where file is stored.
func (p *Publisher) BlobPath(file string) string {
	return path.Join(p.Cfg.Prefix, filepath.Base(file))
}

// Publish uploads each file and returns the blob paths written, stopping at
// the first failure.
func (p *Publisher) Publish(ctx context.Context, files []string, tags map[string]string) ([]string, error) {
	var written []string
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return written, err
		}
		blobPath := p.BlobPath(file)
		if err := p.Put(ctx, blobPath, data, tags); err != nil {
			return written, fmt.Errorf("publish %s: %w", blobPath, err)
		}
		p.Log.Debugf("published %s (%d bytes)", blobPath, len(data))
		written = append(written, blobPath)
	}
	p.Log.Infof("published %d files under %q", len(written), p.Cfg.Prefix)
	return written, nil
}
