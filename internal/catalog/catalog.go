package catalog

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/starfetch/internal/catalog/dto"
	ioutils "github.com/handiism/starfetch/internal/io"
	"github.com/handiism/starfetch/internal/model"
)

// Extension is the file extension of constellation records.
const Extension = ".json"

// DefaultConcurrency bounds parallel record loading in Summaries.
const DefaultConcurrency = 8

// Summary is the one-line description of a record used by listings.
type Summary struct {
	Stem     string `json:"stem" yaml:"stem"`
	Name     string `json:"name" yaml:"name"`
	Quadrant string `json:"quadrant" yaml:"quadrant"`
}

// Catalog reads constellation records from a single directory.
//
// Records are addressed by file stem: Fetch("orion") reads
// <dir>/orion.json. The directory is read fresh on every call, nothing
// is cached.
//
// Example:
//
//	cat := catalog.New("/usr/share/starfetch/constellations", logger)
//	c, err := cat.Fetch("orion")
//	if errors.Is(err, catalog.ErrNotFound) {
//	    // no such record
//	}
type Catalog struct {
	dir         string
	concurrency int
	logger      *zap.Logger
}

// New creates a Catalog over dir. A nil logger disables logging.
func New(dir string, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		dir:         dir,
		concurrency: DefaultConcurrency,
		logger:      logger,
	}
}

// SetConcurrency sets how many records Summaries loads in parallel.
// Values below 1 are ignored.
func (c *Catalog) SetConcurrency(n int) {
	if n >= 1 {
		c.concurrency = n
	}
}

// Dir returns the directory the catalog reads from.
func (c *Catalog) Dir() string {
	return c.dir
}

// Path returns the record file path for name.
func (c *Catalog) Path(name string) string {
	return filepath.Join(c.dir, name+Extension)
}

// Fetch loads and validates the record named name.
//
// Returns an *Error of kind:
//   - KindNotFound if name is not a plain stem or the file cannot be opened
//   - KindMalformed if the file is not a valid record
//   - KindInvalid if a star falls outside the grid
func (c *Catalog) Fetch(name string) (*model.Constellation, error) {
	if !ioutils.IsPlainName(name) {
		return nil, &Error{Kind: KindNotFound, Name: name}
	}

	path := c.Path(name)
	c.logger.Debug("loading constellation", zap.String("name", name), zap.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindNotFound, Name: name, Path: path, Err: err}
	}

	record, err := dto.Decode(data)
	if err != nil {
		return nil, &Error{Kind: KindMalformed, Name: name, Path: path, Err: err}
	}

	constellation := record.ToConstellation()
	if err := constellation.Validate(); err != nil {
		return nil, &Error{Kind: KindInvalid, Name: name, Path: path, Err: err}
	}

	return constellation, nil
}

// Names returns the stems of all record files, sorted.
//
// Only regular files (or symlinks to them) ending in Extension are
// considered; subdirectories and other files are skipped. A record file
// with an empty stem is reported as KindBadFilename.
func (c *Catalog) Names() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("read constellations directory: %w", err)
	}

	// os.ReadDir sorts by file name, so stems come out sorted too.
	var names []string
	for _, entry := range entries {
		stem, ok := ioutils.Stem(entry.Name(), Extension)
		if !ok {
			continue
		}

		regular, err := ioutils.IsRegularFile(c.dir, entry)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		if !regular {
			c.logger.Debug("skipping non-regular entry", zap.String("name", entry.Name()))
			continue
		}

		if stem == "" {
			return nil, &Error{Kind: KindBadFilename, Path: filepath.Join(c.dir, entry.Name())}
		}
		names = append(names, stem)
	}

	return names, nil
}

// Match returns the record stems matching a doublestar glob pattern,
// e.g. "ursa*" or "{lyra,cygnus}".
func (c *Catalog) Match(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	names, err := c.Names()
	if err != nil {
		return nil, err
	}

	var matched []string
	for _, name := range names {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", pattern, err)
		}
		if ok {
			matched = append(matched, name)
		}
	}

	return matched, nil
}

// Random picks one record stem uniformly at random. A nil r uses the
// global source.
func (c *Catalog) Random(r *rand.Rand) (string, error) {
	names, err := c.Names()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", &Error{Kind: KindEmpty, Path: c.dir}
	}

	var i int
	if r != nil {
		i = r.IntN(len(names))
	} else {
		i = rand.IntN(len(names))
	}

	c.logger.Debug("picked random constellation", zap.String("name", names[i]), zap.Int("of", len(names)))
	return names[i], nil
}

// Summaries loads the named records and returns their summaries in the
// same order. Records are loaded in parallel; the first failure cancels
// the rest and is returned.
func (c *Catalog) Summaries(ctx context.Context, names []string) ([]Summary, error) {
	if len(names) == 0 {
		return nil, &Error{Kind: KindEmpty, Path: c.dir}
	}

	summaries := make([]Summary, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			constellation, err := c.Fetch(name)
			if err != nil {
				return err
			}
			summaries[i] = Summary{
				Stem:     name,
				Name:     constellation.Name,
				Quadrant: constellation.Quadrant,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summaries, nil
}
