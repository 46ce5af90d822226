package assets

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"empdir/internal/config"
	"empdir/internal/logging"
	"empdir/internal/storage"
	storeMocks "empdir/internal/storage/mocks"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func newTestProvisioner(t *testing.T, cfg config.ObjectStoreConfig, st storage.Storage, openErr error) (*Provisioner, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	p := NewProvisioner(cfg, logging.New(&buf, nil)).WithOpener(
		func(context.Context, config.ObjectStoreConfig) (storage.Storage, error) {
			if openErr != nil {
				return nil, openErr
			}
			return st, nil
		})
	return p, &buf
}

func configured(dir string) config.ObjectStoreConfig {
	return config.ObjectStoreConfig{Bucket: "bg-bucket", Key: "images/bg.jpg", AssetDir: dir}
}

func TestBackground(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		p, buf := newTestProvisioner(t, config.ObjectStoreConfig{AssetDir: t.TempDir()}, nil, errors.New("must not be called"))

		assert.Empty(t, p.Background(ctx))
		assert.Contains(t, buf.String(), "background image not configured")
	})

	t.Run("downloaded", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "static")
		st := new(storeMocks.MockStorage)
		st.On("Get", mock.Anything, "images/bg.jpg").
			Return(io.NopCloser(strings.NewReader("jpeg-bytes")), storage.ObjectInfo{Key: "images/bg.jpg"}, nil)

		p, buf := newTestProvisioner(t, configured(dir), st, nil)

		assert.Equal(t, "/static/bg.jpg", p.Background(ctx))
		data, err := os.ReadFile(filepath.Join(dir, BackgroundFile))
		require.NoError(t, err)
		assert.Equal(t, "jpeg-bytes", string(data))
		assert.Contains(t, buf.String(), "s3://bg-bucket/images/bg.jpg")
		st.AssertExpectations(t)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("open error", func(t *testing.T) {
		p, buf := newTestProvisioner(t, configured(t.TempDir()), nil, errors.New("bucket bg-bucket does not exist"))

		assert.Empty(t, p.Background(ctx))
		assert.Contains(t, buf.String(), "background image unavailable")
		assert.Contains(t, buf.String(), "does not exist")
	})

	t.Run("get error", func(t *testing.T) {
		st := new(storeMocks.MockStorage)
		st.On("Get", mock.Anything, "images/bg.jpg").Return(nil, storage.ObjectInfo{}, errors.New("NoSuchKey"))
		st.On("Bucket").Return("bg-bucket")

		p, buf := newTestProvisioner(t, configured(t.TempDir()), st, nil)

		assert.Empty(t, p.Background(ctx))
		assert.Contains(t, buf.String(), "get bg-bucket/images/bg.jpg: NoSuchKey")
	})

	t.Run("partial download leaves no file", func(t *testing.T) {
		dir := t.TempDir()
		st := new(storeMocks.MockStorage)
		st.On("Get", mock.Anything, "images/bg.jpg").
			Return(io.NopCloser(failingReader{}), storage.ObjectInfo{}, nil)

		p, _ := newTestProvisioner(t, configured(dir), st, nil)

		assert.Empty(t, p.Background(ctx))
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
