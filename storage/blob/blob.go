

package blob

import (
	"io"
	"path"
	"strings"

	"github.com/gorse-io/instances/base/log"
	"github.com/gorse-io/instances/config"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

// Store is a flat namespace of named objects.
type Store interface {
	// Open an object for reading.
	Open(name string) (io.ReadCloser, error)
	// Create an object for writing. The done channel is closed once the object is persisted.
	Create(name string) (io.WriteCloser, chan struct{}, error)
	// List names of all objects.
	List() ([]string, error)
	// Remove an object.
	Remove(name string) error
}

// Open creates the store selected by the storage configuration.
func Open(cfg config.StorageConfig) (Store, error) {
	switch cfg.Type {
	case config.StoragePOSIX, "":
		return NewPOSIX(cfg.Dir), nil
	case config.StorageS3:
		return NewS3(cfg.S3)
	case config.StorageGCS:
		return NewGCS(cfg.GCS)
	case config.StorageAzure:
		return NewAzureBlob(cfg.Azure, cfg.Azure.Container, cfg.Azure.Prefix)
	default:
		return nil, errors.NotSupportedf("storage %s", cfg.Type)
	}
}

// uploadWriter streams written data to an upload running in the background. Close blocks until the upload
// finishes and reports its error.
type uploadWriter struct {
	*io.PipeWriter
	name string
	done chan struct{}
	err  error
}

func newUploadWriter(name string, upload func(r io.Reader) error) *uploadWriter {
	pr, pw := io.Pipe()
	w := &uploadWriter{PipeWriter: pw, name: name, done: make(chan struct{})}
	go func() {
		defer close(w.done)
		if err := upload(pr); err != nil {
			w.err = errors.Annotatef(err, "failed to upload %s", name)
			log.Logger().Error("failed to upload object", zap.String("name", name), zap.Error(err))
			_ = pr.CloseWithError(err)
			return
		}
		// drain anything the upload left unread so writers never block
		_, _ = io.Copy(io.Discard, pr)
	}()
	return w
}

func (w *uploadWriter) Close() error {
	if err := w.PipeWriter.Close(); err != nil {
		return errors.Trace(err)
	}
	<-w.done
	return w.err
}

// objectName joins a prefix and a name into an object key.
func objectName(prefix, name string) string {
	return strings.TrimPrefix(path.Join(prefix, name), "/")
}

// trimPrefix strips the prefix and the following slash from an object key.
func trimPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return strings.TrimPrefix(strings.TrimPrefix(key, prefix), "/")
}
