package generate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"gbcss/attrs"
	"gbcss/config"
	"gbcss/shapes"
	"gbcss/state"
)

func listShapes(w io.Writer, lib *shapes.Library, idsOnly bool) error {
	if idsOnly {
		for _, id := range lib.IDs() {
			if _, err := fmt.Fprintln(w, id); err != nil {
				return err
			}
		}
		return nil
	}
	for _, g := range lib.Groups() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", g.ID, g.Label); err != nil {
			return err
		}
		for _, s := range g.Shapes {
			if _, err := fmt.Fprintf(w, "\t%s\t%s\n", s.ID, s.Label); err != nil {
				return err
			}
		}
	}
	return nil
}

// previewOptions combines command line with configured shape defaults.
func previewOptions(cmd *cli.Command, conf *config.ShapesConfig) shapes.PreviewOptions {
	opts := shapes.PreviewOptions{
		Width:            int(cmd.Int("width")),
		Height:           int(cmd.Int("height")),
		Color:            cmd.String("color"),
		Background:       cmd.String("background"),
		FlipHorizontally: cmd.Bool("flip-h"),
		FlipVertically:   cmd.Bool("flip-v"),
	}
	if opts.Width == 0 && opts.Height == 0 {
		opts.Width, opts.Height = conf.PreviewWidth, conf.PreviewHeight
	}
	if opts.Color == "" {
		opts.Color = attrs.Set(conf.Defaults).String("color")
	}
	return opts
}

func renderShape(s shapes.Shape, opts shapes.PreviewOptions, svg bool) ([]byte, error) {
	if svg {
		out, err := shapes.Recolor(s.SVG, opts.Color)
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	}
	buf := new(bytes.Buffer)
	if err := shapes.WritePNG(buf, s, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Shapes lists available shape dividers or renders preview of one.
func Shapes(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("shapes")

	lib := env.Cfg.Shapes.ShapeLibrary()
	id := cmd.Args().Get(0)
	if id == "" {
		return listShapes(os.Stdout, lib, cmd.Bool("ids"))
	}

	s, ok := lib.Lookup(id)
	if !ok {
		return fmt.Errorf("unknown shape %q", id)
	}
	svg := cmd.Bool("svg")
	data, err := renderShape(s, previewOptions(cmd, &env.Cfg.Shapes), svg)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if dst == "" {
		ext := ".png"
		if svg {
			ext = ".svg"
		}
		dst = config.CleanFileName(id) + ext
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	env.Overwrite = cmd.Bool("overwrite")
	if err := writeOutput(dst, data, env); err != nil {
		return err
	}
	log.Info("Shape preview written", zap.String("shape", id), zap.String("file", dst))
	return nil
}
