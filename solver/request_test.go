// SPDX-License-Identifier: MIT

package solver_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmath/solver"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestRequest_Validate(t *testing.T) {
	assert.ErrorIs(t, solver.Request{}.Validate(), solver.ErrEmptyProblem)
	assert.ErrorIs(t, solver.Request{Problem: "  \n"}.Validate(), solver.ErrEmptyProblem)
	assert.NoError(t, solver.Request{Problem: "2+2"}.Validate())
	assert.NoError(t, solver.Request{ImageBase64: "AAAA"}.Validate())
}

func TestProblemType(t *testing.T) {
	assert.Equal(t, solver.TypeText, solver.ProblemType(solver.Request{Problem: "x"}))
	assert.Equal(t, solver.TypeImage, solver.ProblemType(solver.Request{ImageBase64: "AAAA"}))
	assert.Equal(t, solver.TypeImage, solver.ProblemType(solver.Request{ImageBase64: "AAAA", MIMEType: "image/png"}))
	assert.Equal(t, solver.TypePDF, solver.ProblemType(solver.Request{ImageBase64: "AAAA", MIMEType: "application/pdf"}))
}

func TestUserPrompt(t *testing.T) {
	assert.Equal(t,
		"Solve this math problem and provide all required information: ∫x dx",
		solver.UserPrompt(solver.Request{Problem: "∫x dx"}))
	assert.Contains(t, solver.UserPrompt(solver.Request{Problem: "ignored", ImageBase64: "AAAA"}), "from the image")
}

func TestEncodeUpload(t *testing.T) {
	enc, mime, err := solver.EncodeUpload("shot.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, base64.StdEncoding.EncodeToString(pngHeader), enc)

	_, mime, err = solver.EncodeUpload("sheet.pdf", []byte("%PDF-1.7\n..."))
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", mime)

	_, mime, err = solver.EncodeUpload("scan.jpg", []byte{0x01, 0x02, 0x03})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime, "extension fallback for unrecognised bytes")

	_, _, err = solver.EncodeUpload("notes.txt", []byte("plain words"))
	assert.ErrorIs(t, err, solver.ErrUnsupportedFile)
}

func TestRequest_Upload(t *testing.T) {
	data, err := solver.Request{ImageBase64: base64.StdEncoding.EncodeToString(pngHeader)}.Upload()
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)

	_, err = solver.Request{ImageBase64: "%%%"}.Upload()
	assert.Error(t, err)
}

func TestHistoryText(t *testing.T) {
	req := solver.Request{Problem: "typed"}
	assert.Equal(t, "extracted", solver.HistoryText(req, &solver.Solution{ProblemExtracted: "extracted"}))
	assert.Equal(t, "typed", solver.HistoryText(req, &solver.Solution{}))
	assert.Equal(t, "Image problem", solver.HistoryText(solver.Request{ImageBase64: "AAAA"}, nil))
}
