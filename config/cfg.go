package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/migrate"
	"gbcss/shapes"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// BlockAttrs is attribute table keyed by block type.
	BlockAttrs map[string]map[string]any

	MediaQueriesConfig struct {
		Tablet string `yaml:"tablet" validate:"required"`
		Mobile string `yaml:"mobile" validate:"required"`
	}

	CustomCSSConfig struct {
		Desktop string `yaml:"desktop,omitempty"`
		Tablet  string `yaml:"tablet,omitempty"`
		Mobile  string `yaml:"mobile,omitempty"`
	}

	StylesConfig struct {
		MediaQueries       MediaQueriesConfig `yaml:"media_queries"`
		ContainerWidth     string             `yaml:"container_width" validate:"required"`
		VendorPrefixes     bool               `yaml:"vendor_prefixes"`
		EditorPrefix       string             `yaml:"editor_prefix"`
		URLBase            string             `yaml:"url_base,omitempty" validate:"omitempty,url"`
		CustomCSS          CustomCSSConfig    `yaml:"custom_css"`
		OutputNameTemplate string             `yaml:"output_name_template"`
		FileNameSlug       bool               `yaml:"file_name_slug"`
	}

	ContentConfig struct {
		Database          string `yaml:"database" sanitize:"path_clean,assure_dir_exists_for_file"`
		Encoding          string `yaml:"encoding,omitempty"`
		FeaturedImageSize string `yaml:"featured_image_size" validate:"required"`
	}

	FontsConfig struct {
		Enable  bool        `yaml:"enable"`
		Base    string      `yaml:"base" validate:"required"`
		Display FontDisplay `yaml:"display" validate:"gte=0"`
		Subset  string      `yaml:"subset,omitempty"`
	}

	LegacyDefaultsConfig struct {
		V140 BlockAttrs `yaml:"v1_4_0"`
		V180 BlockAttrs `yaml:"v1_8_0"`
	}

	ShapeConfig struct {
		ID    string `yaml:"id" validate:"required"`
		Label string `yaml:"label"`
		SVG   string `yaml:"svg" validate:"required"`
	}

	ShapeGroupConfig struct {
		ID     string        `yaml:"id" validate:"required"`
		Label  string        `yaml:"label"`
		Shapes []ShapeConfig `yaml:"shapes" validate:"dive"`
	}

	ShapesConfig struct {
		Defaults      map[string]any     `yaml:"defaults"`
		PreviewWidth  int                `yaml:"preview_width" validate:"min=1,max=4096"`
		PreviewHeight int                `yaml:"preview_height" validate:"min=0,max=4096"`
		Custom        []ShapeGroupConfig `yaml:"custom,omitempty" validate:"dive"`
	}

	Config struct {
		Version        int                  `yaml:"version" validate:"eq=1"`
		Styles         StylesConfig         `yaml:"styles"`
		Content        ContentConfig        `yaml:"content"`
		Fonts          FontsConfig          `yaml:"fonts"`
		Defaults       BlockAttrs           `yaml:"defaults"`
		LegacyDefaults LegacyDefaultsConfig `yaml:"legacy_defaults"`
		Shapes         ShapesConfig         `yaml:"shapes"`
		Logging        LoggingConfig        `yaml:"logging"`
		Reporting      ReporterConfig       `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, output name is expanded for
	// every input later, not when configuration is loaded
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation. Block attribute tables from
// the file replace template tables of the same block type as a whole.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// Sets converts table to attribute sets.
func (b BlockAttrs) Sets() map[string]attrs.Set {
	out := make(map[string]attrs.Set, len(b))
	for typ, a := range b {
		out[typ] = attrs.Set(a)
	}
	return out
}

// MediaQueryTable returns media query conditions by breakpoint.
func (c *StylesConfig) MediaQueryTable() map[common.Breakpoint]string {
	return map[common.Breakpoint]string{
		common.BreakpointTablet: c.MediaQueries.Tablet,
		common.BreakpointMobile: c.MediaQueries.Mobile,
	}
}

// CustomCSSFor returns custom CSS configured for breakpoint.
func (c *StylesConfig) CustomCSSFor(bp common.Breakpoint) string {
	switch bp {
	case common.BreakpointTablet:
		return c.CustomCSS.Tablet
	case common.BreakpointMobile:
		return c.CustomCSS.Mobile
	}
	return c.CustomCSS.Desktop
}

// MigrationTables returns legacy tables for migrations.
func (c *Config) MigrationTables() migrate.Tables {
	return migrate.Tables{
		V140:     c.LegacyDefaults.V140.Sets(),
		V180:     c.LegacyDefaults.V180.Sets(),
		Defaults: c.Defaults.Sets(),
	}
}

// ShapeLibrary returns builtin shapes extended with configured ones.
func (c *ShapesConfig) ShapeLibrary() *shapes.Library {
	groups := make([]shapes.Group, 0, len(c.Custom))
	for _, g := range c.Custom {
		group := shapes.Group{ID: g.ID, Label: g.Label}
		for _, s := range g.Shapes {
			group.Shapes = append(group.Shapes, shapes.Shape{ID: s.ID, Label: s.Label, SVG: s.SVG})
		}
		groups = append(groups, group)
	}
	return shapes.New(groups...)
}
