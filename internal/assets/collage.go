package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	"golang.org/x/image/draw"
)

// collageCellSize is the width and height of one tile in the collage grid
const collageCellSize = 200

// ErrNoImages is returned when a collage is requested with nothing to show
var ErrNoImages = errors.New("no images to compose")

// Collage composes a grid of the given prize images: won images at full
// quality, everything else as its pixelated preview. Returns PNG bytes
// ready to attach to a message.
func (l *Library) Collage(images []string, won map[string]bool) ([]byte, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(images)))))
	rows := (len(images) + cols - 1) / cols

	canvas := image.NewRGBA(image.Rect(0, 0, cols*collageCellSize, rows*collageCellSize))

	for i, name := range images {
		path := l.HiddenPath(name)
		if won[name] {
			path = l.OriginalPath(name)
		}

		img, err := l.decode(path)
		if err != nil {
			// A missing tile leaves its cell blank rather than
			// sinking the whole collage
			continue
		}

		col, row := i%cols, i/cols
		cell := image.Rect(
			col*collageCellSize,
			row*collageCellSize,
			(col+1)*collageCellSize,
			(row+1)*collageCellSize,
		)

		draw.ApproxBiLinear.Scale(canvas, cell, img, img.Bounds(), draw.Src, nil)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode collage: %w", err)
	}

	return buf.Bytes(), nil
}
