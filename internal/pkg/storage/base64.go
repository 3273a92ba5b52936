package storage

import (
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidImage = errors.New("invalid base64 image data")

var dataURLPrefix = regexp.MustCompile(`(?i)^data:image/\w+;base64,`)

// DecodeBase64Image strips an optional data-URL prefix and decodes the payload.
func DecodeBase64Image(s string) ([]byte, error) {
	payload := strings.TrimSpace(dataURLPrefix.ReplaceAllString(s, ""))
	if payload == "" {
		return nil, ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidImage
	}
	return data, nil
}
