package app

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/starfetch/internal/bundled"
	"github.com/handiism/starfetch/internal/catalog"
	"github.com/handiism/starfetch/internal/config"
	"github.com/handiism/starfetch/internal/model"
	"github.com/handiism/starfetch/internal/render"
)

// App coordinates one starfetch invocation: it owns the resolved data
// directory, the catalog reading from it and the writers producing output.
type App struct {
	settings *config.Settings
	baseDir  string
	catalog  *catalog.Catalog
	renderer *render.Renderer
	summary  *render.SummaryWriter
	out      io.Writer
	rng      *rand.Rand
	logger   *zap.Logger
}

// New resolves the base directory from settings and prepares an App
// writing to out. A nil logger disables logging.
func New(settings *config.Settings, out io.Writer, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	colorMode, err := render.ParseColorMode(settings.Color)
	if err != nil {
		return nil, err
	}
	listFormat, err := render.ParseListFormat(settings.ListFormat)
	if err != nil {
		return nil, err
	}

	baseDir, err := config.Resolve(settings, logger)
	if err != nil {
		return nil, err
	}

	cat := catalog.New(config.ConstellationsDir(baseDir), logger)
	cat.SetConcurrency(settings.Concurrency)

	emph := render.NewEmphasizer(out, colorMode)

	return &App{
		settings: settings,
		baseDir:  baseDir,
		catalog:  cat,
		renderer: render.NewRenderer(emph),
		summary:  render.NewSummaryWriter(listFormat, emph),
		out:      out,
		logger:   logger,
	}, nil
}

// SetRand replaces the random source used by ShowRandom.
func (a *App) SetRand(r *rand.Rand) {
	a.rng = r
}

// BaseDir returns the resolved base directory.
func (a *App) BaseDir() string {
	return a.baseDir
}

// RecordsDir returns the directory holding the constellation records.
func (a *App) RecordsDir() string {
	return a.catalog.Dir()
}

// Catalog returns the catalog over RecordsDir.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// Renderer returns the star map renderer bound to the output.
func (a *App) Renderer() *render.Renderer {
	return a.renderer
}

// Show renders the constellation name.
func (a *App) Show(name string) error {
	c, err := a.catalog.Fetch(name)
	if err != nil {
		return err
	}
	a.warnTitle(name, c)
	return a.renderer.Render(a.out, c)
}

// ShowRandom renders a constellation picked uniformly at random.
func (a *App) ShowRandom() error {
	name, err := a.catalog.Random(a.rng)
	if err != nil {
		return err
	}
	return a.Show(name)
}

// List writes a summary line for every record, or only for those
// matching pattern when it is non-empty.
func (a *App) List(ctx context.Context, pattern string) error {
	var (
		names []string
		err   error
	)
	if pattern != "" {
		names, err = a.catalog.Match(pattern)
		if err == nil && len(names) == 0 {
			return fmt.Errorf("no constellation matches %q", pattern)
		}
	} else {
		names, err = a.catalog.Names()
	}
	if err != nil {
		return err
	}

	a.logger.Debug("listing constellations", zap.Int("count", len(names)), zap.String("pattern", pattern))

	summaries, err := a.catalog.Summaries(ctx, names)
	if err != nil {
		return err
	}
	return a.summary.Write(a.out, summaries)
}

// PrintPath writes the records directory followed by a newline.
func (a *App) PrintPath() error {
	_, err := fmt.Fprintln(a.out, a.RecordsDir())
	return err
}

// Problem is one record that failed validation, or that loads but looks
// wrong.
type Problem struct {
	Name    string
	Err     error
	Warning bool
}

// Report is the outcome of Validate.
type Report struct {
	Checked  int
	Problems []Problem
}

// Failed reports whether any problem is an error rather than a warning.
func (r *Report) Failed() bool {
	for _, p := range r.Problems {
		if !p.Warning {
			return true
		}
	}
	return false
}

// Validate loads every record and collects the failures instead of
// stopping at the first one. Titles that do not span the map and glyphs
// that are not one column wide are reported as warnings.
func (a *App) Validate(ctx context.Context) (*Report, error) {
	names, err := a.catalog.Names()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, &catalog.Error{Kind: catalog.KindEmpty, Path: a.RecordsDir()}
	}

	problems := make([][]Problem, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.settings.Concurrency)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := a.catalog.Fetch(name)
			if err != nil {
				problems[i] = append(problems[i], Problem{Name: name, Err: err})
				return nil
			}
			if w := c.TitleWidth(); w != model.GridWidth {
				problems[i] = append(problems[i], Problem{
					Name:    name,
					Err:     fmt.Errorf("title is %d columns wide, want %d", w, model.GridWidth),
					Warning: true,
				})
			}
			for _, u := range c.UnevenGlyphs() {
				problems[i] = append(problems[i], Problem{
					Name:    name,
					Err:     &u,
					Warning: true,
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Checked: len(names)}
	for _, p := range problems {
		report.Problems = append(report.Problems, p...)
	}
	return report, nil
}

func (a *App) warnTitle(name string, c *model.Constellation) {
	if w := c.TitleWidth(); w != model.GridWidth {
		a.logger.Debug("title does not span the map",
			zap.String("name", name),
			zap.Int("width", w),
			zap.Int("want", model.GridWidth))
	}
}

// InstallTarget returns the records directory `init` writes to: the
// asset path when one is set, otherwise the user data directory.
func InstallTarget(settings *config.Settings) (string, error) {
	if settings.AssetPath != "" {
		return config.ConstellationsDir(settings.AssetPath), nil
	}
	base, err := config.UserDataDir()
	if err != nil {
		return "", err
	}
	return config.ConstellationsDir(base), nil
}

// Install copies the bundled records into the install target and returns
// the directory together with the stems written.
func Install(settings *config.Settings, overwrite bool, logger *zap.Logger) (string, []string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dir, err := InstallTarget(settings)
	if err != nil {
		return "", nil, err
	}

	installed, err := bundled.Install(dir, overwrite)
	if err != nil {
		return dir, installed, err
	}

	logger.Debug("installed bundled constellations",
		zap.String("dir", filepath.Clean(dir)),
		zap.Strings("names", installed))
	return dir, installed, nil
}
