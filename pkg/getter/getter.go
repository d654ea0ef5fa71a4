// Package getter wraps hashicorp/go-getter for downloading tool
// archives and binaries.
package getter

import (
	"context"
	"os"

	getter "github.com/hashicorp/go-getter/v2"
	"github.com/rs/zerolog"

	"github.com/ericsmacedo/dotfiles/pkg/logging"
)

// Client wraps go-getter for single-file and decompressed fetches.
type Client struct {
	client *getter.Client
	log    zerolog.Logger
}

// New creates a Client with default configuration.
func New() *Client {
	return &Client{
		client: &getter.Client{
			DisableSymlinks: true,
		},
		log: logging.GetLogger("getter"),
	}
}

// FetchFile downloads a single file from src to dest.
func (c *Client) FetchFile(ctx context.Context, src, dest string) error {
	c.log.Debug().Str("src", src).Str("dest", dest).Msg("Fetching file")

	req := &getter.Request{
		Src:             src,
		Dst:             dest,
		GetMode:         getter.ModeFile,
		DisableSymlinks: true,
	}

	_, err := c.client.Get(ctx, req)
	return err
}

// ExtractTarGz unpacks a local .tar.gz archive into destDir.
func (c *Client) ExtractTarGz(archive, destDir string) error {
	c.log.Debug().Str("archive", archive).Str("dest", destDir).Msg("Extracting archive")

	d := &getter.TarGzipDecompressor{}
	return d.Decompress(destDir, archive, true, os.FileMode(0))
}
