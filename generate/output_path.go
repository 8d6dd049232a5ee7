package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"gbcss/config"
	"gbcss/state"
)

// buildOutputPath returns output file path for the source. Name is either
// source base name or expansion of user template, which may contain
// subdirectories. Unless NoDirs is set directory structure of the source
// relative to processed directory is kept.
func buildOutputPath(s *source, dst, ext string, values Values, env *state.LocalEnv) string {
	outDir := determineOutputDir(s, dst, env)
	defaultFile := cleanPathSegment(s.name, env) + ext

	if env.Cfg.Styles.OutputNameTemplate == "" {
		return filepath.Join(outDir, defaultFile)
	}

	expanded, err := expandTemplate(config.OutputNameTemplateFieldName, env.Cfg.Styles.OutputNameTemplate, values)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return filepath.Join(outDir, defaultFile)
	}
	segments := splitPath(filepath.FromSlash(strings.TrimSpace(expanded)))
	if len(segments) == 0 {
		return filepath.Join(outDir, defaultFile)
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, outDir)
	for _, segment := range segments {
		parts = append(parts, cleanPathSegment(segment, env))
	}
	parts[len(parts)-1] += ext
	return filepath.Join(parts...)
}

func determineOutputDir(s *source, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, s.dir)
}

// splitPath returns non empty path segments, ".." segments are dropped so
// output never escapes destination.
func splitPath(path string) []string {
	var segments []string
	for head, tail := filepath.Split(strings.TrimSuffix(path, string(os.PathSeparator))); ; head, tail = filepath.Split(head) {
		if tail != "" && tail != "." && tail != ".." {
			segments = slices.Insert(segments, 0, tail)
		}
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" || head == filepath.VolumeName(head) {
			break
		}
	}
	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Styles.FileNameSlug {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}

// writeOutput saves data, existing files are replaced only when requested.
// Written file is stored into debug report.
func writeOutput(path string, data []byte, env *state.LocalEnv) error {
	if _, err := os.Stat(path); err == nil && !env.Overwrite {
		return fmt.Errorf("output file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	if err := env.Rpt.StoreCopy("output", path); err != nil {
		env.Log.Warn("Unable to store output in report", zap.String("file", path), zap.Error(err))
	}
	return nil
}
