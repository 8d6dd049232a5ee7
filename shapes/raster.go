package shapes

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// maxRasterDim limits preview size, shapes have huge viewBox widths.
var maxRasterDim = 4096

// PreviewOptions control shape rendering.
type PreviewOptions struct {
	// Width and Height of preview, when only one is set the other keeps
	// aspect ratio of viewBox. Shapes do not preserve aspect ratio so when
	// both are set the shape is stretched.
	Width, Height int
	// Color of the shape, empty keeps black.
	Color string
	// Background fill, transparent when empty.
	Background string
	// FlipHorizontally and FlipVertically mirror the preview the way divider
	// transforms do it on the page.
	FlipHorizontally bool
	FlipVertically   bool
}

// Rasterize renders shape into an image.
func Rasterize(s Shape, opts PreviewOptions) (image.Image, error) {
	svg, err := Recolor(s.SVG, opts.Color)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("unable to read shape %s: %w", s.ID, err)
	}

	intrW := max(int(math.Ceil(icon.ViewBox.W)), 1)
	intrH := max(int(math.Ceil(icon.ViewBox.H)), 1)

	w, h := intrW, intrH
	switch {
	case opts.Width > 0 && opts.Height > 0:
		w, h = opts.Width, opts.Height
	case opts.Width > 0:
		w = opts.Width
		h = int(math.Round(float64(w) * float64(intrH) / float64(intrW)))
	case opts.Height > 0:
		h = opts.Height
		w = int(math.Round(float64(h) * float64(intrW) / float64(intrH)))
	}
	w, h = max(w, 1), max(h, 1)

	if w > maxRasterDim || h > maxRasterDim {
		scale := min(float64(maxRasterDim)/float64(w), float64(maxRasterDim)/float64(h))
		w = max(int(math.Round(float64(w)*scale)), 1)
		h = max(int(math.Round(float64(h)*scale)), 1)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if opts.Background != "" {
		bg, err := oksvg.ParseSVGColor(opts.Background)
		if err != nil {
			return nil, fmt.Errorf("bad background color %q: %w", opts.Background, err)
		}
		if bg == nil {
			bg = color.Transparent
		}
		draw.Draw(dst, dst.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	}

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)

	var img image.Image = dst
	if opts.FlipHorizontally {
		img = imaging.FlipH(img)
	}
	if opts.FlipVertically {
		img = imaging.FlipV(img)
	}
	return img, nil
}

// WritePNG renders shape preview as PNG.
func WritePNG(w io.Writer, s Shape, opts PreviewOptions) error {
	img, err := Rasterize(s, opts)
	if err != nil {
		return err
	}
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("unable to encode preview of %s: %w", s.ID, err)
	}
	return nil
}
