package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps a CSV upload.
const maxUploadBytes = 8 << 20

var errNoUpload = errors.New("a CSV file is required in the 'file' form field or as a text/csv body")

// openUpload returns the CSV sent either as the multipart field "file" or as a raw text/csv body.
func openUpload(c *gin.Context) (io.ReadCloser, error) {
	if c.ContentType() == "text/csv" {
		return io.NopCloser(io.LimitReader(c.Request.Body, maxUploadBytes)), nil
	}

	header, err := c.FormFile("file")
	if err != nil {
		return nil, errNoUpload
	}
	if header.Size > maxUploadBytes {
		return nil, fmt.Errorf("file %q is larger than %d bytes", header.Filename, maxUploadBytes)
	}
	return header.Open()
}
