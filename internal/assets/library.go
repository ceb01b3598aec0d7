package assets

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "image/jpeg"
	_ "image/png"
)

// ErrAssetMissing is returned when an image file for an otherwise valid
// prize cannot be located. Callers should degrade gracefully; a recorded
// win is never rolled back over a lost file.
var ErrAssetMissing = errors.New("asset missing")

// Config holds configuration for the asset library
type Config struct {
	// ImageDir holds the original prize images
	ImageDir string

	// HiddenDir holds the pixelated preview variants
	HiddenDir string
}

// Library resolves prize image references to files on disk and maintains
// the pixelated preview for each original
type Library struct {
	imageDir  string
	hiddenDir string
}

// New creates a new asset library, creating the preview directory if needed
func New(cfg *Config) (*Library, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ImageDir == "" || cfg.HiddenDir == "" {
		return nil, errors.New("image and hidden directories cannot be empty")
	}

	if err := os.MkdirAll(cfg.HiddenDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create hidden image directory: %w", err)
	}

	return &Library{
		imageDir:  cfg.ImageDir,
		hiddenDir: cfg.HiddenDir,
	}, nil
}

// ListImages returns the file names of all prize images, sorted
func (l *Library) ListImages() ([]string, error) {
	entries, err := os.ReadDir(l.imageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".png", ".jpg", ".jpeg":
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

// OriginalPath returns the on-disk path of the full-resolution image
func (l *Library) OriginalPath(name string) string {
	return filepath.Join(l.imageDir, filepath.Base(name))
}

// HiddenPath returns the on-disk path of the pixelated preview
func (l *Library) HiddenPath(name string) string {
	return filepath.Join(l.hiddenDir, filepath.Base(name))
}

// Original opens the full-resolution image for reading
func (l *Library) Original(name string) (*os.File, error) {
	f, err := os.Open(l.OriginalPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrAssetMissing, name)
		}
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return f, nil
}

// Hidden opens the pixelated preview for reading
func (l *Library) Hidden(name string) (*os.File, error) {
	f, err := os.Open(l.HiddenPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrAssetMissing, name)
		}
		return nil, fmt.Errorf("failed to open hidden image: %w", err)
	}
	return f, nil
}

// EnsureHidden generates the pixelated preview for every original that does
// not have one yet. Returns the number of previews generated.
func (l *Library) EnsureHidden() (int, error) {
	names, err := l.ListImages()
	if err != nil {
		return 0, err
	}

	generated := 0
	for _, name := range names {
		if _, err := os.Stat(l.HiddenPath(name)); err == nil {
			continue
		}

		if err := l.generateHidden(name); err != nil {
			return generated, fmt.Errorf("failed to generate preview for %s: %w", name, err)
		}
		generated++
	}

	return generated, nil
}

// generateHidden pixelates one original into the hidden directory
func (l *Library) generateHidden(name string) error {
	img, err := l.decode(l.OriginalPath(name))
	if err != nil {
		return err
	}

	return encodeToFile(l.HiddenPath(name), Pixelate(img))
}

// decode reads and decodes an image file
func (l *Library) decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}
