package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	gotName, gotType string
	gotBody          []byte
	err              error
}

func (f *fakeUploader) Upload(_ context.Context, name, contentType string, body io.Reader, _ int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.gotName, f.gotType = name, contentType
	f.gotBody, _ = io.ReadAll(body)
	return "https://cdn.example.com/attachments/" + name, nil
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *stdhttp.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, _ = part.Write(content)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(stdhttp.MethodPost, "/upload", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestUploadHandler(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name     string
		store    Uploader
		field    string
		filename string
		content  []byte
		want     int
	}{
		{"ok", &fakeUploader{}, "file", "../license.pdf", []byte("%PDF-1.7"), stdhttp.StatusCreated},
		{"missing field", &fakeUploader{}, "", "", nil, stdhttp.StatusBadRequest},
		{"empty file", &fakeUploader{}, "file", "empty.pdf", nil, stdhttp.StatusBadRequest},
		{"storage down", &fakeUploader{err: errors.New("s3 unavailable")}, "file", "a.pdf", []byte("x"), stdhttp.StatusBadGateway},
		{"not configured", nil, "file", "a.pdf", []byte("x"), stdhttp.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUploadHandler(tt.store, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(multipartRequest(t, tt.field, tt.filename, tt.content), rec)
			require.NoError(t, h.Upload(c))
			require.Equal(t, tt.want, rec.Code, rec.Body.String())
			if tt.want != stdhttp.StatusCreated {
				return
			}
			var resp uploadResp
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, "license.pdf", resp.Name)
			require.Equal(t, "https://cdn.example.com/attachments/license.pdf", resp.URL)
			fu := tt.store.(*fakeUploader)
			require.Equal(t, []byte("%PDF-1.7"), fu.gotBody)
			require.Equal(t, echo.MIMEOctetStream, fu.gotType)
		})
	}
}
