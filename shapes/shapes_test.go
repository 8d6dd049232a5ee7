package shapes_test

import (
	"bytes"
	"image/png"
	"slices"
	"strings"
	"testing"

	"gbcss/shapes"
)

func TestLibrary_Builtin(t *testing.T) {
	l := shapes.New()

	var groups []string
	for _, g := range l.Groups() {
		groups = append(groups, g.ID)
	}
	if want := []string{"gb-waves", "gb-angles", "gb-curves", "gb-triangles"}; !slices.Equal(groups, want) {
		t.Fatalf("groups = %v, want %v", groups, want)
	}

	ids := l.IDs()
	if len(ids) != 29 {
		t.Fatalf("got %d shapes, want 29", len(ids))
	}
	i9 := slices.Index(ids, "gb-triangle-9")
	i10 := slices.Index(ids, "gb-triangle-10")
	if i9 < 0 || i10 != i9+1 {
		t.Errorf("natural order broken: %v", ids)
	}

	s, ok := l.Lookup("gb-angle-1")
	if !ok || s.Label != "Angle 1" || !strings.Contains(s.SVG, `viewBox="0 0 1200 100"`) {
		t.Errorf("Lookup(gb-angle-1) = %+v, %v", s, ok)
	}
	if _, ok := l.Lookup("gb-missing"); ok {
		t.Error("Lookup found missing shape")
	}
}

func TestLibrary_Custom(t *testing.T) {
	custom := shapes.Shape{ID: "gb-angle-1", Label: "Steep", SVG: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><path d="M0 0h10v10z"/></svg>`}
	extra := shapes.Shape{ID: "my-zigzag-1", Label: "Zigzag", SVG: custom.SVG}
	l := shapes.New(
		shapes.Group{ID: "gb-angles", Shapes: []shapes.Shape{custom}},
		shapes.Group{ID: "my-zigzag", Label: "Zigzag", Shapes: []shapes.Shape{extra}},
	)

	groups := l.Groups()
	if len(groups) != 5 || groups[4].ID != "my-zigzag" {
		t.Fatalf("unexpected groups %v", groups)
	}
	if groups[1].Label != "Angles" || len(groups[1].Shapes) != 4 {
		t.Errorf("custom shape changed group layout: %+v", groups[1])
	}
	if s, _ := l.Lookup("gb-angle-1"); s.Label != "Steep" {
		t.Errorf("builtin shape not replaced: %+v", s)
	}
	if groups[1].Shapes[0].Label != "Steep" {
		t.Errorf("group keeps old shape: %+v", groups[1].Shapes[0])
	}
}

func TestRecolor(t *testing.T) {
	s, _ := shapes.New().Lookup("gb-triangle-1")

	out, err := shapes.Recolor(s.SVG, "#ff0000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(out, `fill="#ff0000"`) != 2 {
		t.Errorf("fill not set on svg and path: %s", out)
	}

	if out, _ := shapes.Recolor(s.SVG, ""); out != s.SVG {
		t.Errorf("empty color changed markup")
	}
	if _, err := shapes.Recolor("<div/>", "red"); err == nil {
		t.Error("expected error for non svg markup")
	}
}

func TestRasterize(t *testing.T) {
	s, _ := shapes.New().Lookup("gb-angle-1")

	tests := []struct {
		name string
		opts shapes.PreviewOptions
		w, h int
	}{
		{"scale_by_width", shapes.PreviewOptions{Width: 600}, 600, 50},
		{"scale_by_height", shapes.PreviewOptions{Height: 10}, 120, 10},
		{"stretch", shapes.PreviewOptions{Width: 300, Height: 300}, 300, 300},
		{"flipped", shapes.PreviewOptions{Width: 120, FlipHorizontally: true, FlipVertically: true, Color: "#336699"}, 120, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := shapes.Rasterize(s, tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if img.Bounds().Dx() != tt.w || img.Bounds().Dy() != tt.h {
				t.Fatalf("unexpected bounds: %v", img.Bounds())
			}
		})
	}
}

func TestRasterize_Flip(t *testing.T) {
	s, _ := shapes.New().Lookup("gb-angle-4")

	img, err := shapes.Rasterize(s, shapes.PreviewOptions{Width: 120})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flipped, err := shapes.Rasterize(s, shapes.PreviewOptions{Width: 120, FlipVertically: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Angle is filled along the bottom edge.
	b := img.Bounds()
	if _, _, _, a := img.At(b.Dx()/2, b.Dy()-1).RGBA(); a == 0 {
		t.Error("bottom edge is empty")
	}
	if _, _, _, a := flipped.At(b.Dx()/2, 0).RGBA(); a == 0 {
		t.Error("flipped top edge is empty")
	}
}

func TestWritePNG(t *testing.T) {
	s, _ := shapes.New().Lookup("gb-curve-4")

	var buf bytes.Buffer
	if err := shapes.WritePNG(&buf, s, shapes.PreviewOptions{Width: 240, Background: "white"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("preview is not png: %v", err)
	}
	if img.Bounds().Dx() != 240 {
		t.Errorf("unexpected bounds: %v", img.Bounds())
	}
}
