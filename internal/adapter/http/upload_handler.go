package http

import (
	"context"
	"io"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Uploader stores one attachment and returns the URL clients put in
// a facility's attachments map.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error)
}

type UploadHandler struct {
	store Uploader
	log   *zap.Logger
}

func NewUploadHandler(store Uploader, log *zap.Logger) *UploadHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &UploadHandler{store: store, log: log}
}

type uploadResp struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (h *UploadHandler) Upload(c echo.Context) error {
	if h.store == nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "upload storage not configured"})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "missing multipart field \"file\"")
	}
	if fh.Size == 0 {
		return badRequest(c, "file is empty")
	}
	src, err := fh.Open()
	if err != nil {
		return badRequest(c, "unreadable file")
	}
	defer src.Close()

	contentType := fh.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	name := filepath.Base(fh.Filename)
	url, err := h.store.Upload(c.Request().Context(), name, contentType, src, fh.Size)
	if err != nil {
		h.log.Error("attachment upload failed", zap.String("name", name), zap.Error(err))
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upload failed"})
	}
	return c.JSON(http.StatusCreated, uploadResp{Name: name, URL: url})
}
