// Package imgutil identifies and decodes the still-image formats a photo
// library may hold.
package imgutil

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies a supported image type.
type Kind int

const (
	KindUnknown Kind = iota
	KindJPEG
	KindPNG
)

func (k Kind) String() string {
	switch k {
	case KindJPEG:
		return "jpeg"
	case KindPNG:
		return "png"
	default:
		return "unknown"
	}
}

// MediaType returns the MIME type for k, empty when unknown.
func (k Kind) MediaType() string {
	switch k {
	case KindJPEG:
		return "image/jpeg"
	case KindPNG:
		return "image/png"
	default:
		return ""
	}
}

var (
	pngSig  = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	jpegSig = []byte{0xff, 0xd8, 0xff}
)

// ErrUnsupported is returned by Decode for anything that is not JPEG or PNG.
var ErrUnsupported = errors.New("unsupported image format")

// DetectHeader inspects the first bytes of a file for known signatures.
func DetectHeader(header []byte) Kind {
	switch {
	case bytes.HasPrefix(header, jpegSig):
		return KindJPEG
	case bytes.HasPrefix(header, pngSig):
		return KindPNG
	default:
		return KindUnknown
	}
}

// SniffFile reads the first 8 bytes of a file to determine its type.
func SniffFile(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, err
	}
	defer f.Close()

	return SniffReader(f)
}

// SniffReader reads up to 8 bytes from r and determines its type. Short
// inputs are reported as unknown rather than as an error.
func SniffReader(r io.Reader) (Kind, error) {
	header := make([]byte, 8)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return KindUnknown, err
	}
	return DetectHeader(header[:n]), nil
}

// Decode sniffs data and decodes it with the matching codec.
func Decode(data []byte) (image.Image, Kind, error) {
	kind := DetectHeader(data)
	var (
		img image.Image
		err error
	)
	switch kind {
	case KindJPEG:
		img, err = jpeg.Decode(bytes.NewReader(data))
	case KindPNG:
		img, err = png.Decode(bytes.NewReader(data))
	default:
		return nil, kind, ErrUnsupported
	}
	if err != nil {
		return nil, kind, fmt.Errorf("decode %s: %w", kind, err)
	}
	return img, kind, nil
}

// HasImageExtension is a cheap filter for directory listings; content is
// still sniffed before decoding.
func HasImageExtension(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	default:
		return false
	}
}
