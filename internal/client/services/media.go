package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dmitrijs2005/sitecms/internal/client/client"
	"github.com/dmitrijs2005/sitecms/internal/common"
	"github.com/dmitrijs2005/sitecms/internal/models"
)

// MaxImageSize bounds uploads before they leave the machine.
const MaxImageSize = 5 << 20

type MediaService interface {
	UploadImage(ctx context.Context, filename string, r io.Reader) (*models.UploadResult, error)
}

type mediaService struct {
	api API
}

func NewMediaService(api API) MediaService {
	return &mediaService{api: api}
}

func (s *mediaService) UploadImage(ctx context.Context, filename string, r io.Reader) (*models.UploadResult, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, client.Invalid(fmt.Errorf("image %q is empty", filename))
	}
	if len(data) > MaxImageSize {
		return nil, client.Invalid(fmt.Errorf("image %q is larger than %d MB", filename, MaxImageSize>>20))
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, client.Invalid(fmt.Errorf("%q is not an image (%s)", filename, mt.String()))
	}

	var res models.UploadResult
	if err := s.api.Upload(ctx, "/admin/upload", common.UploadFieldName, filename, bytes.NewReader(data), &res); err != nil {
		return nil, err
	}
	return &res, nil
}
