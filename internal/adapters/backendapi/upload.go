package backendapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	apperrors "github.com/target/ecompanel-ui/internal/errors"
	"github.com/target/ecompanel-ui/internal/ports"
)

// MaxUploadBytes bounds an uploaded image.
const MaxUploadBytes = 5 << 20

var _ ports.UploadAPI = (*Client)(nil)

type uploadTarget struct {
	path  string
	field string
}

//nolint:gochecknoglobals // static read-only lookup
var uploadTargets = map[ports.UploadKind]uploadTarget{
	ports.UploadCategoryImage:    {path: categoriesPath + "/upload-image", field: "image"},
	ports.UploadBrandLogo:        {path: brandsPath + "/upload-logo", field: "logo"},
	ports.UploadManufacturerLogo: {path: manufacturersPath + "/upload-logo", field: "logo"},
}

// Upload sends an image as multipart form data and returns the URL the backend stored it at.
func (c *Client) Upload(ctx context.Context, kind ports.UploadKind, filename string, body io.Reader) (string, error) {
	target, ok := uploadTargets[kind]
	if !ok {
		return "", apperrors.Validationf("unsupported upload kind %q", kind)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(target.field, filepath.Base(filename))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "create multipart part")
	}
	n, err := io.Copy(part, io.LimitReader(body, MaxUploadBytes+1))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "read upload")
	}
	if n > MaxUploadBytes {
		return "", apperrors.ValidationField(target.field, fmt.Sprintf("image exceeds %d MB", MaxUploadBytes>>20))
	}
	if err := mw.Close(); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "finish multipart body")
	}

	out, err := sendJSON[string](ctx, c, request{
		method:      http.MethodPost,
		path:        target.path,
		raw:         buf.Bytes(),
		contentType: mw.FormDataContentType(),
		auth:        true,
	})
	if err != nil {
		return "", err
	}
	if *out == "" {
		return "", apperrors.Internal("upload response did not include a URL")
	}
	return *out, nil
}
