package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when the content is empty or whitespace only.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrEncodingFailed is returned when PNG encoding fails.
	ErrEncodingFailed = errors.New("failed to encode QR code")
)

// defaultSize is the image edge length in pixels when none is given.
const defaultSize = 256

// Render encodes content into a PNG QR code of the given size.
func Render(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrEncodingFailed, err)
	}
	return png, nil
}

// RenderDataURI encodes content into a QR code and returns it as a
// data:image/png;base64 URI, ready to drop into an <img> src attribute.
func RenderDataURI(content string, size int) (string, error) {
	png, err := Render(content, size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}
