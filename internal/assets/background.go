// Package assets provisions the optional background image served under /static.
package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"empdir/internal/config"
	"empdir/internal/storage"
)

const (
	// URLPrefix is where the asset directory is mounted.
	URLPrefix = "/static"
	// BackgroundFile is the local name of the downloaded image.
	BackgroundFile = "bg.jpg"
)

// Opener builds the storage client. storage.NewMinIO is the production opener.
type Opener func(ctx context.Context, cfg config.ObjectStoreConfig) (storage.Storage, error)

// Provisioner downloads the background image once, before serving begins.
type Provisioner struct {
	cfg  config.ObjectStoreConfig
	open Opener
	log  zerolog.Logger
}

// NewProvisioner returns a Provisioner reading from the configured S3 bucket.
func NewProvisioner(cfg config.ObjectStoreConfig, log zerolog.Logger) *Provisioner {
	return &Provisioner{cfg: cfg, open: storage.NewMinIO, log: log}
}

// WithOpener replaces the storage opener.
func (p *Provisioner) WithOpener(open Opener) *Provisioner {
	p.open = open
	return p
}

// Background fetches the image and returns its public URL. Failures are
// logged and reported as an empty URL; they never stop startup.
func (p *Provisioner) Background(ctx context.Context) string {
	if !p.cfg.Configured() {
		p.log.Warn().Msg("background image not configured")
		return ""
	}

	p.log.Info().
		Str("background_url", fmt.Sprintf("s3://%s/%s", p.cfg.Bucket, p.cfg.Key)).
		Msg("fetching background image")

	if p.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.FetchTimeout)
		defer cancel()
	}

	path, err := p.fetch(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("background image unavailable")
		return ""
	}

	p.log.Info().Str("path", path).Msg("background image stored")
	return URLPrefix + "/" + BackgroundFile
}

func (p *Provisioner) fetch(ctx context.Context) (string, error) {
	st, err := p.open(ctx, p.cfg)
	if err != nil {
		return "", fmt.Errorf("open object store: %w", err)
	}

	rc, _, err := st.Get(ctx, p.cfg.Key)
	if err != nil {
		return "", fmt.Errorf("get %s/%s: %w", st.Bucket(), p.cfg.Key, err)
	}
	defer rc.Close()

	if err := os.MkdirAll(p.cfg.AssetDir, 0o755); err != nil {
		return "", fmt.Errorf("create asset dir: %w", err)
	}

	// Write to a temp file first so a partial download never replaces bg.jpg.
	tmp, err := os.CreateTemp(p.cfg.AssetDir, BackgroundFile+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, rc); err != nil {
		tmp.Close()
		return "", fmt.Errorf("download %s: %w", p.cfg.Key, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	dst := filepath.Join(p.cfg.AssetDir, BackgroundFile)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("store %s: %w", dst, err)
	}
	return dst, nil
}
