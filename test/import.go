package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// LoadTestFile loads a test file from the testdata directory
//
// File contents are returned as a buffer and a map for the HTTP request headers
func LoadTestFile(t *testing.T, filePath string) (*bytes.Buffer, map[string]string) {
	file, err := os.Open(path.Join("../../../testdata", filePath))
	if err != nil {
		assert.FailNow(t, err.Error())
	}
	defer file.Close()

	return MultipartFile(t, path.Base(filePath), file)
}

// MultipartFile creates a multipart form body with the content
// as form file "file" with the specified file name.
func MultipartFile(t *testing.T, fileName string, content io.Reader) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		assert.FailNow(t, err.Error())
	}

	if _, err := io.Copy(w, content); err != nil {
		assert.FailNow(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}

// MultipartString is MultipartFile for in-line test content.
func MultipartString(t *testing.T, fileName, content string) (*bytes.Buffer, map[string]string) {
	return MultipartFile(t, fileName, strings.NewReader(content))
}
