package ai

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
)

// defaultMaxImageSide bounds the longer side of images sent to a backend.
const defaultMaxImageSide = 1024

// maxDecodePixels caps the canvas size shrinkImage is willing to decode.
const maxDecodePixels = 40_000_000

// shrinkImage scales JPEG and PNG images down so that neither side exceeds
// maxSide. Other formats, undecodable data and images that already fit are
// returned unchanged. Images larger than maxDecodePixels are dropped, since
// they can be neither decoded nor sent as they are.
func shrinkImage(img *Image, maxSide uint) *Image {
	if img == nil || maxSide == 0 {
		return img
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil || (format != "jpeg" && format != "png") {
		return img
	}
	if uint(cfg.Width) <= maxSide && uint(cfg.Height) <= maxSide {
		return img
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxDecodePixels {
		return nil
	}
	src, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return img
	}

	dst := resize.Thumbnail(maxSide, maxSide, src, resize.Lanczos3)
	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85})
	case "png":
		err = png.Encode(&buf, dst)
	default:
		return img
	}
	if err != nil {
		return img
	}
	return &Image{Data: buf.Bytes(), MIMEType: "image/" + format}
}
