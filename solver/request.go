// SPDX-License-Identifier: MIT

package solver

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

// Problem types stored alongside history records.
const (
	TypeText  = "text"
	TypeImage = "image"
	TypePDF   = "pdf"
)

// DefaultImageMIME is assumed for uploads without a declared type.
const DefaultImageMIME = "image/jpeg"

const mimePDF = "application/pdf"

// Request is one problem submission.
type Request struct {
	Problem     string `json:"problem"`
	ImageBase64 string `json:"imageBase64,omitempty"`
	MIMEType    string `json:"mimeType,omitempty"`
}

// Validate rejects a Request with neither text nor upload.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Problem) == "" && r.ImageBase64 == "" {
		return ErrEmptyProblem
	}

	return nil
}

// HasUpload reports whether the Request carries a file.
func (r Request) HasUpload() bool { return r.ImageBase64 != "" }

// MIME returns the declared upload type, or DefaultImageMIME.
func (r Request) MIME() string {
	if r.MIMEType == "" {
		return DefaultImageMIME
	}

	return r.MIMEType
}

// ProblemType classifies r as TypeText, TypeImage or TypePDF.
func ProblemType(r Request) string {
	switch {
	case !r.HasUpload():
		return TypeText
	case r.MIME() == mimePDF:
		return TypePDF
	}

	return TypeImage
}

// UserPrompt is the user turn sent with r.
func UserPrompt(r Request) string {
	if r.HasUpload() {
		return uploadPrompt
	}

	return textPromptPrefix + r.Problem
}

// Upload decodes the base64 payload of r.
func (r Request) Upload() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(r.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("solver: decode upload: %w", err)
	}

	return data, nil
}

// EncodeUpload classifies a file by content (falling back to its extension)
// and returns its base64 payload and MIME type. Only image/* and
// application/pdf are accepted.
func EncodeUpload(name string, data []byte) (encoded, mime string, err error) {
	mime = http.DetectContentType(data)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if mime == "application/octet-stream" || mime == "text/plain" {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".pdf":
			mime = mimePDF
		case ".png":
			mime = "image/png"
		case ".jpg", ".jpeg":
			mime = "image/jpeg"
		case ".webp":
			mime = "image/webp"
		}
	}
	if !strings.HasPrefix(mime, "image/") && mime != mimePDF {
		return "", "", fmt.Errorf("%s (%s): %w", name, mime, ErrUnsupportedFile)
	}

	return base64.StdEncoding.EncodeToString(data), mime, nil
}
