package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"gbcss/css"
	"gbcss/state"
)

// checkResult summarizes a parsed stylesheet.
type checkResult struct {
	rules    int
	media    int
	imports  int
	matching []string // media queries matching requested viewport width
	warnings []string
}

func checkStylesheet(p *css.Parser, data []byte, name string, width int) checkResult {
	sheet := p.Parse(data, name)

	res := checkResult{warnings: sheet.Warnings}
	for _, item := range sheet.Items {
		switch {
		case item.Rule != nil:
			res.rules++
		case item.Import != nil:
			res.imports++
		case item.MediaBlock != nil:
			res.media++
			res.rules += len(item.MediaBlock.Rules)
			if width > 0 && item.MediaBlock.Query.Evaluate(width) {
				res.matching = append(res.matching, item.MediaBlock.Query.Raw)
			}
		}
	}
	return res
}

func printCheck(w io.Writer, name string, res checkResult, width int) error {
	if _, err := fmt.Fprintf(w, "%s: %d rules, %d media blocks, %d imports\n", name, res.rules, res.media, res.imports); err != nil {
		return err
	}
	if width > 0 {
		for _, q := range res.matching {
			if _, err := fmt.Fprintf(w, "\tapplies at %dpx: @media %s\n", width, q); err != nil {
				return err
			}
		}
	}
	for _, warn := range res.warnings {
		if _, err := fmt.Fprintf(w, "\twarning: %s\n", warn); err != nil {
			return err
		}
	}
	return nil
}

// Check parses stylesheets and reports their structure and problems.
func Check(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	if cmd.Args().Len() == 0 {
		return errors.New("no stylesheet has been specified")
	}
	width := int(cmd.Int("width"))

	p := css.NewParser(log)
	var problems int
	for _, name := range cmd.Args().Slice() {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := os.ReadFile(name)
		if err != nil {
			log.Error("Unable to read stylesheet", zap.String("file", name), zap.Error(err))
			problems++
			continue
		}
		res := checkStylesheet(p, data, name, width)
		problems += len(res.warnings)
		if err := printCheck(os.Stdout, name, res, width); err != nil {
			return err
		}
	}
	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	return nil
}
