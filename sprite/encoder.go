package sprite

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"
	"strings"

	// Recognized icon image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// levels is the sprite grayscale depth. PlantUML sprites use one hex digit
// per pixel.
const levels = 16

const hexDigits = "0123456789ABCDEF"

// Encoder renders images from a file system into sprite declarations.
type Encoder struct {
	fsys  fs.FS
	shift int
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithShift forces the brightness shift added to every non-transparent
// pixel instead of deriving it from the darkest pixel.
func WithShift(shift int) Option {
	return func(e *Encoder) {
		e.shift = shift
	}
}

// NewEncoder creates an Encoder reading images from fsys, typically os.DirFS
// of the icons directory.
func NewEncoder(fsys fs.FS, opts ...Option) *Encoder {
	encoder := &Encoder{fsys: fsys}

	for _, apply := range opts {
		apply(encoder)
	}

	return encoder
}

// Encode decodes the image at path and renders it as
//
//	sprite $<name> [WxH/16] {
//	<one hex digit per pixel>
//	}
//
// Digit 0 is transparent, F is full ink. Unless a shift was forced, the
// image is brightened so its darkest opaque pixel reaches F.
func (e *Encoder) Encode(path, name string) (string, error) {
	data, err := fs.ReadFile(e.fsys, path)
	if err != nil {
		return "", fmt.Errorf("reading image %q: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image %q: %w", path, err)
	}

	grid := rasterize(img)

	shift := e.shift
	if shift == 0 {
		shift = levels - 1 - darkest(grid)
	}

	var b strings.Builder

	bounds := img.Bounds()
	fmt.Fprintf(&b, "sprite $%s [%dx%d/%d] {\n", name, bounds.Dx(), bounds.Dy(), levels)

	for _, row := range grid {
		for _, level := range row {
			if level > 0 {
				level = min(levels-1, level+shift)
			}

			b.WriteByte(hexDigits[level])
		}

		b.WriteByte('\n')
	}

	b.WriteString("}\n")

	return b.String(), nil
}

// rasterize maps each pixel to its ink level: 0 for transparent or white,
// levels-1 for opaque black.
func rasterize(img image.Image) [][]int {
	bounds := img.Bounds()
	grid := make([][]int, 0, bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := make([]int, 0, bounds.Dx())

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			row = append(row, inkLevel(img.At(x, y).RGBA()))
		}

		grid = append(grid, row)
	}

	return grid
}

// inkLevel converts premultiplied 16-bit RGBA to a 0..15 ink level.
func inkLevel(r, g, b, a uint32) int {
	if a == 0 {
		return 0
	}

	// Un-premultiply, then ITU-R 601 luma.
	luma := (299*(r*0xffff/a) + 587*(g*0xffff/a) + 114*(b*0xffff/a)) / 1000
	if luma > 0xffff {
		luma = 0xffff
	}

	return int((0xffff - luma) * (levels - 1) / 0xffff)
}

// darkest returns the highest ink level present in the grid.
func darkest(grid [][]int) int {
	level := 0

	for _, row := range grid {
		for _, l := range row {
			if l > level {
				level = l
			}
		}
	}

	return level
}
