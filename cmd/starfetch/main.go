package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/handiism/starfetch/internal/app"
	"github.com/handiism/starfetch/internal/config"
	"github.com/handiism/starfetch/internal/logging"
)

const appName = "starfetch"

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// errUsage marks invalid action combinations; main prints usage for it.
var errUsage = errors.New("exactly one of <name>, --random, --list, --path, --init, --validate or --version must be given")

// options holds the command line flags.
type options struct {
	configPath string
	assetPath  string
	resolution string
	color      string
	format     string
	match      string
	verbose    bool

	random   bool
	list     bool
	path     bool
	init     bool
	validate bool
	version  bool

	force       bool
	writeConfig bool

	logger *zap.Logger
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := rootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr)
			fmt.Fprint(os.Stderr, cmd.UsageString())
		}
		cancel()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "starfetch [name]",
		Short: "Show constellations as star maps in the terminal",
		Long: `starfetch draws a constellation as a small star map next to its
name, quadrant, right ascension, declination, area and main stars.

Records are JSON files in a constellations/ directory. It is looked up in
--asset-path, then ./share, /usr/share/starfetch and /opt/starfetch/share,
or in the user data directory with --resolution userdata.

Any record name is accepted as <name>; the other actions are flags.

Examples:
  starfetch orion
  starfetch --random
  starfetch --list --match 'ursa*'
  starfetch --path
  starfetch --init --write-config
  starfetch --validate`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Settings file (JSON or YAML); defaults to the user config directory")
	flags.StringVarP(&opts.assetPath, "asset-path", "a", "", "Set the path where constellations are loaded from")
	flags.StringVar(&opts.resolution, "resolution", "", "Data directory policy: search or userdata")
	flags.StringVar(&opts.color, "color", "", "Emphasis: auto, always or never")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	flags.BoolVarP(&opts.random, "random", "r", false, "Show a random constellation")
	flags.BoolVarP(&opts.list, "list", "l", false, "List all constellations")
	flags.BoolVarP(&opts.path, "path", "p", false, "Print the constellations directory")
	flags.BoolVar(&opts.init, "init", false, "Install the bundled constellations into the data directory")
	flags.BoolVar(&opts.validate, "validate", false, "Check that every constellation record loads")
	flags.BoolVar(&opts.version, "version", false, "Print version information")

	flags.StringVar(&opts.format, "format", "", "List format: text, json or yaml (with --list)")
	flags.StringVar(&opts.match, "match", "", "Only list constellations matching this glob (with --list)")
	flags.BoolVarP(&opts.force, "force", "f", false, "Overwrite existing records (with --init)")
	flags.BoolVar(&opts.writeConfig, "write-config", false, "Also write the settings file if it does not exist (with --init)")

	return cmd
}

func runRoot(cmd *cobra.Command, opts *options, args []string) error {
	selected := 0
	for _, on := range []bool{len(args) == 1, opts.random, opts.list, opts.path, opts.init, opts.validate, opts.version} {
		if on {
			selected++
		}
	}
	if selected != 1 {
		return errUsage
	}
	if !opts.list && (opts.match != "" || opts.format != "") {
		return fmt.Errorf("--match and --format only apply to --list")
	}
	if !opts.init && (opts.force || opts.writeConfig) {
		return fmt.Errorf("--force and --write-config only apply to --init")
	}

	out := cmd.OutOrStdout()
	if opts.version {
		fmt.Fprintf(out, "%s version %s\n", appName, version)
		return nil
	}

	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}
	if opts.init {
		return runInit(out, opts, settings)
	}

	a, err := app.New(settings, out, opts.logger)
	if err != nil {
		return err
	}

	switch {
	case opts.random:
		return a.ShowRandom()
	case opts.list:
		return a.List(cmd.Context(), opts.match)
	case opts.path:
		return a.PrintPath()
	case opts.validate:
		report, err := a.Validate(cmd.Context())
		if err != nil {
			return err
		}
		return writeReport(out, report)
	default:
		return a.Show(args[0])
	}
}

// runInit copies the bundled records into the asset path or the user data
// directory, and with --write-config stores the settings in use.
func runInit(w io.Writer, opts *options, settings *config.Settings) error {
	dir, installed, err := app.Install(settings, opts.force, opts.logger)
	if err != nil {
		return err
	}

	if len(installed) == 0 {
		fmt.Fprintf(w, "%s is up to date\n", dir)
	} else {
		fmt.Fprintf(w, "Installed %d constellation(s) into %s:\n", len(installed), dir)
		fmt.Fprintf(w, "  %s\n", strings.Join(installed, ", "))
	}

	if !opts.writeConfig {
		return nil
	}

	path, err := settingsPath(opts)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "%s already exists, not overwritten\n", path)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := settings.Save(path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	fmt.Fprintf(w, "Wrote settings to %s\n", path)
	return nil
}

func writeReport(w io.Writer, report *app.Report) error {
	for _, p := range report.Problems {
		level := "error"
		if p.Warning {
			level = "warning"
		}
		fmt.Fprintf(w, "%s: %s: %v\n", level, p.Name, p.Err)
	}

	fmt.Fprintf(w, "%d record(s) checked, %d problem(s)\n", report.Checked, len(report.Problems))
	if report.Failed() {
		return fmt.Errorf("some constellation records are broken")
	}
	return nil
}

// settingsPath returns --config, or the default settings file location.
func settingsPath(opts *options) (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return config.DefaultPath()
}

// loadSettings reads the settings file and applies flag overrides.
func loadSettings(opts *options) (*config.Settings, error) {
	path, err := settingsPath(opts)
	if err != nil {
		// no config dir; run on defaults
		path = ""
	}

	settings := config.DefaultSettings()
	if path != "" {
		settings, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
	}

	if opts.assetPath != "" {
		settings.AssetPath = opts.assetPath
	}
	if opts.resolution != "" {
		settings.Resolution = opts.resolution
	}
	if opts.color != "" {
		settings.Color = opts.color
	}
	if opts.format != "" {
		settings.ListFormat = opts.format
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if opts.logger != nil {
		opts.logger.Debug("settings loaded", zap.String("path", path), zap.String("resolution", settings.Resolution))
	}
	return settings, nil
}
