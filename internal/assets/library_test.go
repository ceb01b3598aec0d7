package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LibraryTestSuite struct {
	suite.Suite
	imageDir  string
	hiddenDir string
	library   *Library
}

func (s *LibraryTestSuite) SetupTest() {
	s.imageDir = s.T().TempDir()
	s.hiddenDir = filepath.Join(s.T().TempDir(), "hidden")

	lib, err := New(&Config{
		ImageDir:  s.imageDir,
		HiddenDir: s.hiddenDir,
	})
	s.Require().NoError(err)
	s.library = lib
}

func TestLibraryTestSuite(t *testing.T) {
	suite.Run(t, new(LibraryTestSuite))
}

// writeImage writes a solid-color PNG of the given size into the image dir
func (s *LibraryTestSuite) writeImage(name string, w, h int, c color.Color) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(filepath.Join(s.imageDir, name))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(f.Close()) }()

	s.Require().NoError(png.Encode(f, img))
}

func (s *LibraryTestSuite) TestNewValidations() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{ImageDir: "", HiddenDir: s.hiddenDir})
	s.Error(err)

	_, err = New(&Config{ImageDir: s.imageDir, HiddenDir: ""})
	s.Error(err)
}

func (s *LibraryTestSuite) TestListImagesFiltersAndSorts() {
	s.writeImage("zebra.png", 10, 10, color.White)
	s.writeImage("apple.png", 10, 10, color.White)
	s.Require().NoError(os.WriteFile(filepath.Join(s.imageDir, "notes.txt"), []byte("x"), 0o644))
	s.Require().NoError(os.Mkdir(filepath.Join(s.imageDir, "sub.png"), 0o755))

	names, err := s.library.ListImages()
	s.Require().NoError(err)
	s.Equal([]string{"apple.png", "zebra.png"}, names)
}

func (s *LibraryTestSuite) TestEnsureHiddenGeneratesPreviews() {
	s.writeImage("red.png", 120, 80, color.RGBA{R: 255, A: 255})
	s.writeImage("blue.png", 60, 60, color.RGBA{B: 255, A: 255})

	generated, err := s.library.EnsureHidden()
	s.Require().NoError(err)
	s.Equal(2, generated)

	for _, name := range []string{"red.png", "blue.png"} {
		_, err := os.Stat(s.library.HiddenPath(name))
		s.NoError(err)
	}
}

func (s *LibraryTestSuite) TestEnsureHiddenIsIdempotent() {
	s.writeImage("red.png", 120, 80, color.RGBA{R: 255, A: 255})

	generated, err := s.library.EnsureHidden()
	s.Require().NoError(err)
	s.Equal(1, generated)

	generated, err = s.library.EnsureHidden()
	s.Require().NoError(err)
	s.Equal(0, generated)
}

func (s *LibraryTestSuite) TestEnsureHiddenPicksUpNewImages() {
	s.writeImage("red.png", 40, 40, color.RGBA{R: 255, A: 255})

	_, err := s.library.EnsureHidden()
	s.Require().NoError(err)

	s.writeImage("green.png", 40, 40, color.RGBA{G: 255, A: 255})

	generated, err := s.library.EnsureHidden()
	s.Require().NoError(err)
	s.Equal(1, generated)
}

func (s *LibraryTestSuite) TestHiddenPreviewKeepsDimensions() {
	s.writeImage("red.png", 120, 80, color.RGBA{R: 255, A: 255})

	_, err := s.library.EnsureHidden()
	s.Require().NoError(err)

	f, err := s.library.Hidden("red.png")
	s.Require().NoError(err)
	defer func() { s.Require().NoError(f.Close()) }()

	img, _, err := image.Decode(f)
	s.Require().NoError(err)
	s.Equal(120, img.Bounds().Dx())
	s.Equal(80, img.Bounds().Dy())
}

func (s *LibraryTestSuite) TestOriginalMissing() {
	_, err := s.library.Original("gone.png")
	s.Require().ErrorIs(err, ErrAssetMissing)
}

func (s *LibraryTestSuite) TestHiddenMissing() {
	_, err := s.library.Hidden("gone.png")
	s.Require().ErrorIs(err, ErrAssetMissing)
}

func (s *LibraryTestSuite) TestPathsStripDirectoryComponents() {
	s.Equal(
		filepath.Join(s.imageDir, "cat.png"),
		s.library.OriginalPath("../cat.png"),
	)
	s.Equal(
		filepath.Join(s.hiddenDir, "cat.png"),
		s.library.HiddenPath("sub/cat.png"),
	)
}

func (s *LibraryTestSuite) TestPixelatePreservesDimensions() {
	img := image.NewRGBA(image.Rect(0, 0, 200, 140))
	out := Pixelate(img)
	s.Equal(200, out.Bounds().Dx())
	s.Equal(140, out.Bounds().Dy())
}

func (s *LibraryTestSuite) TestPixelateTinyImage() {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	out := Pixelate(img)
	s.Equal(3, out.Bounds().Dx())
	s.Equal(3, out.Bounds().Dy())
}

func (s *LibraryTestSuite) TestCollageDimensions() {
	for _, name := range []string{"a.png", "b.png", "c.png", "d.png", "e.png"} {
		s.writeImage(name, 50, 50, color.White)
	}
	_, err := s.library.EnsureHidden()
	s.Require().NoError(err)

	data, err := s.library.Collage(
		[]string{"a.png", "b.png", "c.png", "d.png", "e.png"},
		map[string]bool{"b.png": true},
	)
	s.Require().NoError(err)

	img, err := png.Decode(bytes.NewReader(data))
	s.Require().NoError(err)

	// Five tiles fit a 3x2 grid
	s.Equal(3*collageCellSize, img.Bounds().Dx())
	s.Equal(2*collageCellSize, img.Bounds().Dy())
}

func (s *LibraryTestSuite) TestCollageSkipsMissingTiles() {
	s.writeImage("a.png", 50, 50, color.White)
	_, err := s.library.EnsureHidden()
	s.Require().NoError(err)

	data, err := s.library.Collage([]string{"a.png", "gone.png"}, nil)
	s.Require().NoError(err)

	_, err = png.Decode(bytes.NewReader(data))
	s.NoError(err)
}

func (s *LibraryTestSuite) TestCollageEmpty() {
	_, err := s.library.Collage(nil, nil)
	s.Require().ErrorIs(err, ErrNoImages)
}
