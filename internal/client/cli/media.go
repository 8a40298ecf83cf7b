package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Upload sends a local image file and prints the URL to use in articles.
func (a *App) Upload(ctx context.Context, path string) error {
	return a.protected(ctx, func(ctx context.Context) error {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		res, err := a.mediaService.UploadImage(ctx, filepath.Base(path), f)
		if err != nil {
			return err
		}
		a.printf("Uploaded: %s\n", res.URL)
		return nil
	})
}
