package storage

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const thumbnailMaxWidth = 480

func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// Thumbnail downscales an uploaded image to a webp preview. Returns false
// for non-images or undecodable data; the upload itself is unaffected.
func Thumbnail(data []byte) ([]byte, bool) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > thumbnailMaxWidth {
		h = h * thumbnailMaxWidth / w
		w = thumbnailMaxWidth
	}
	if w < 1 || h < 1 {
		return nil, false
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	out, err := webp.EncodeRGBA(dst, 80)
	if err != nil {
		return nil, false
	}
	return out, true
}
