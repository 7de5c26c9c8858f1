package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	viewchart "github.com/andareed/siftly-activity/chart"
	"github.com/andareed/siftly-activity/dataset"
	"github.com/andareed/siftly-activity/logging"
	"github.com/andareed/siftly-activity/stats"
)

// View is a snapshot of everything the bundle writes.
type View struct {
	Activity   viewchart.Scene
	Difference viewchart.Scene
	Subset     []dataset.Record
	Summary    stats.Summary
}

const (
	ActivitySVG   = "activity.svg"
	ActivityPNG   = "activity.png"
	DifferenceSVG = "difference.svg"
	FilteredCSV   = "filtered.csv"
	FilteredXLSX  = "filtered.xlsx"
)

type job struct {
	name  string
	write func(io.Writer) error
}

func jobs(v View) []job {
	var out []job
	if !v.Activity.Empty {
		out = append(out,
			job{ActivitySVG, func(w io.Writer) error { return Scene(w, v.Activity, SVG) }},
			job{ActivityPNG, func(w io.Writer) error { return Scene(w, v.Activity, PNG) }},
		)
	}
	if !v.Difference.Hidden && !v.Difference.Empty {
		out = append(out, job{DifferenceSVG, func(w io.Writer) error { return Scene(w, v.Difference, SVG) }})
	}
	out = append(out,
		job{FilteredCSV, func(w io.Writer) error { return CSV(w, v.Subset) }},
		job{FilteredXLSX, func(w io.Writer) error { return XLSX(w, v.Subset, v.Summary) }},
	)
	return out
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

// Bundle writes every applicable file of v into dir concurrently and
// returns the written paths in name order. The difference image is skipped
// while that chart is hidden.
func Bundle(ctx context.Context, dir string, v View) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	todo := jobs(v)
	paths := make([]string, len(todo))

	g, ctx := errgroup.WithContext(ctx)
	for i, j := range todo {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := filepath.Join(dir, j.name)
			if err := writeFile(p, j.write); err != nil {
				return err
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		logging.Errorf("export to %s failed: %v", dir, err)
		return nil, err
	}
	sort.Strings(paths)
	logging.Infof("exported %d files to %s", len(paths), dir)
	return paths, nil
}
