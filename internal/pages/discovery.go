package pages

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"pageswipe/internal/domain"
)

// ErrEmpty is returned when a directory holds no matching pages
var ErrEmpty = errors.New("no pages found")

// Discover loads every file in dir matching pattern, ordered by file name.
// Subdirectories and hidden files are skipped.
func Discover(ctx context.Context, dir, pattern string) ([]domain.Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read pages dir")
	}

	var pages []domain.Page
	for _, e := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !Matches(e.Name(), pattern) || e.IsDir() {
			continue
		}
		if e.Type()&fs.ModeSymlink != 0 {
			// Follow links to regular files only
			info, err := os.Stat(filepath.Join(dir, e.Name()))
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		}

		path := filepath.Join(dir, e.Name())
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read page %s", e.Name())
		}
		pages = append(pages, domain.Page{
			Name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			Path: path,
			Body: string(body),
		})
	}

	if len(pages) == 0 {
		return nil, errors.Wrapf(ErrEmpty, "%s matching %q", dir, pattern)
	}

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Path < pages[j].Path
	})
	return pages, nil
}

// Matches reports whether a file name is a page under pattern
func Matches(name, pattern string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	ok, err := filepath.Match(pattern, name)
	return err == nil && ok
}
