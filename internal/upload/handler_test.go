package upload_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HavenEstates/HE-Backend/internal/upload"
	"github.com/sirupsen/logrus"
)

func testHandler(t *testing.T) *upload.Handler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	h, err := upload.NewHandler(t.TempDir(), "http://localhost:5050", log)
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	return h
}

// multipartBody builds a multipart request body with a single file part
// under the given field name and content type.
func multipartBody(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestStoreWritesFileAndReturnsURL(t *testing.T) {
	h := testHandler(t)

	body, contentType := multipartBody(t, "image", "house.jpg", "image/jpeg", []byte("fake-jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Store(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}

	var result map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON body: %s", rec.Body.String())
	}

	imageURL, _ := result["imageUrl"].(string)
	if !strings.HasPrefix(imageURL, "http://localhost:5050/uploads/") {
		t.Errorf("unexpected imageUrl: %q", imageURL)
	}
	if !strings.HasSuffix(imageURL, ".jpg") {
		t.Errorf("expected original extension preserved, got: %q", imageURL)
	}

	filename, _ := result["filename"].(string)
	stored, err := os.ReadFile(filepath.Join(h.Dir, filename))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(stored) != "fake-jpeg-bytes" {
		t.Errorf("stored content mismatch: %q", stored)
	}
}

func TestStoreRejectsMissingFile(t *testing.T) {
	h := testHandler(t)

	body, contentType := multipartBody(t, "document", "notes.txt", "text/plain", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Store(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing image field, got %d", rec.Code)
	}
}

func TestStoreRejectsNonImage(t *testing.T) {
	h := testHandler(t)

	body, contentType := multipartBody(t, "image", "script.sh", "application/x-sh", []byte("#!/bin/sh"))
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Store(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-image upload, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Only image files") {
		t.Errorf("expected image-only message, got: %q", rec.Body.String())
	}
}
