package assets

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// pixelFactor is how many times smaller the intermediate image is; larger
// values produce blockier previews
const pixelFactor = 20

// Pixelate degrades an image by shrinking it and blowing it back up with
// nearest-neighbour sampling, so the preview shows blocks instead of detail
func Pixelate(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	smallW := max(w/pixelFactor, 1)
	smallH := max(h/pixelFactor, 1)

	small := image.NewRGBA(image.Rect(0, 0, smallW, smallH))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, bounds, draw.Src, nil)

	big := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), draw.Src, nil)

	return big
}

// encodeToFile writes an image, picking the codec from the file extension
func encodeToFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, nil)
	default:
		return png.Encode(f, img)
	}
}
