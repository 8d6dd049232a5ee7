package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gbcss/config"
	"gbcss/generate"
	"gbcss/misc"
	"gbcss/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()
	generate.RegisterHooks(env)

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 {
		env.Log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	env.RestoreStdLog()

	// log is synced now, errors must be reported directly to stderr from now on
	if env.Rpt != nil {
		if er := env.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	// remove empty panic file if any
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := filepath.Join(filepath.Dir(env.Cfg.Logging.FileLogger.Destination), misc.GetAppName()+"-panic.log")
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// Subcommands return regular errors, they are logged here before
// application context is destroyed.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	if log := state.EnvFromContext(ctx).Log; log != nil {
		log.Warn("Unknown command, nothing to do", zap.String("command", name))
	}
}

// flags shared by commands reading block content
func contentFlags(postUsage string) []cli.Flag {
	return []cli.Flag{
		&cli.Int64SliceFlag{Name: "post", Aliases: []string{"p"}, Usage: postUsage},
		&cli.StringFlag{Name: "input-cp",
			Usage: "force `ENCODING` of input files and non UTF-8 names in archives (see IANA.org for character set names), overrides configuration"},
		&cli.StringFlag{Name: "featured-image", Usage: "`URL` of featured image used by file sources"},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "nodirs", Aliases: []string{"nd"}, Usage: "when producing output do not keep input directory structure"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exists, overwrite files"},
	}
}

const sourceHelp = `
SOURCE:
    path to serialized block content, following forms are supported:
        path to a file: "[path_to_file]page.html"
        path to a zip archive: "[path_to_archive]site.zip" - process all content files in archive
        path to a directory: "[path_to_directory]directory" - recursively process all files
        with .html, .htm and .txt extensions and zip archives (symbolic links are not followed)
    may be omitted when stored posts are requested with --post

DESTINATION:
    always a directory, output file name(s) are derived from source and output name template
    if absent - current working directory
`

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "responsive style engine for page building blocks",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:         "render",
				Usage:        "Generates stylesheets for block content",
				OnUsageError: usageErrorHandler,
				Action:       generate.Render,
				Flags: append(append(contentFlags("render stored post with `ID` (may be repeated)"), outputFlags()...),
					&cli.StringFlag{Name: "scope", Value: "frontend", Usage: "generate rules for `SCOPE` (frontend or editor)"},
				),
				ArgsUsage:          "[SOURCE] [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf("%s%s", cli.CommandHelpTemplate, sourceHelp),
			},
			{
				Name:         "migrate",
				Usage:        "Upgrades block attributes saved by older versions",
				OnUsageError: usageErrorHandler,
				Action:       generate.Migrate,
				Flags: append(append(contentFlags("migrate stored post with `ID` in place (may be repeated)"), outputFlags()...),
					&cli.BoolFlag{Name: "unique-ids", Usage: "assign fresh unique ids to blocks without one or with duplicate"},
				),
				ArgsUsage: "[SOURCE] [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s%s
Migrated file sources are written to DESTINATION, stored posts are updated
in the content database.
`, cli.CommandHelpTemplate, sourceHelp),
			},
			{
				Name:         "fonts",
				Usage:        "Prints web font requests for block content",
				OnUsageError: usageErrorHandler,
				Action:       generate.Fonts,
				Flags:        contentFlags("use stored post with `ID` (may be repeated)"),
				ArgsUsage:    "[SOURCE]",
			},
			{
				Name:         "check",
				Usage:        "Parses stylesheets and reports problems",
				OnUsageError: usageErrorHandler,
				Action:       generate.Check,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "width", Usage: "list media queries which apply to viewport of `PIXELS` width"},
				},
				ArgsUsage: "FILE [FILE...]",
			},
			{
				Name:         "import",
				Usage:        "Stores content files and attachments into content database",
				OnUsageError: usageErrorHandler,
				Action:       generate.Import,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "reusable", Aliases: []string{"r"}, Usage: "store files as reusable blocks"},
					&cli.StringFlag{Name: "title", Usage: "post `TITLE`, single file only, defaults to file name"},
					&cli.Int64Flag{Name: "featured-media", Usage: "attachment `ID` of featured image"},
					&cli.StringSliceFlag{Name: "attachment", Aliases: []string{"a"},
						Usage: "store attachment `ID,SIZE,URL` (may be repeated)"},
					&cli.StringFlag{Name: "input-cp",
						Usage: "force `ENCODING` of input files (see IANA.org for character set names), overrides configuration"},
				},
				ArgsUsage: "[FILE...]",
				CustomHelpTemplate: fmt.Sprintf(`%s
Every FILE becomes new post, its id is reported in the log. Reusable blocks
are referenced from content as <!-- wp:block {"ref":ID} /-->.
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "shapes",
				Usage:        "Lists shape dividers or renders preview of one",
				OnUsageError: usageErrorHandler,
				Action:       generate.Shapes,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "ids", Usage: "list only shape ids in natural order"},
					&cli.BoolFlag{Name: "svg", Usage: "write recolored SVG instead of PNG preview"},
					&cli.IntFlag{Name: "width", Usage: "preview `WIDTH` in pixels, defaults to configuration"},
					&cli.IntFlag{Name: "height", Usage: "preview `HEIGHT` in pixels, defaults to configuration"},
					&cli.StringFlag{Name: "color", Usage: "shape `COLOR`, defaults to configured shape color"},
					&cli.StringFlag{Name: "background", Usage: "preview background `COLOR`, transparent if absent"},
					&cli.BoolFlag{Name: "flip-h", Usage: "flip shape horizontally"},
					&cli.BoolFlag{Name: "flip-v", Usage: "flip shape vertically"},
					&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite existing preview file"},
				},
				ArgsUsage: "[SHAPE] [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
Without SHAPE all available shapes are listed. DESTINATION is preview file
name, if absent - SHAPE.png (or SHAPE.svg) in current working directory.
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values wich is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
