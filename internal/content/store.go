package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/microcoso/microcoso"
	"github.com/microcoso/microcoso/internal/fileutil"
)

// Sentinel errors for content operations.
var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidSlug  = errors.New("invalid slug")
	ErrContentDir   = errors.New("content directory unavailable")
)

// DefaultExtension is the content file extension used when none is set.
const DefaultExtension = ".txt"

// Store reads posts from a content directory. It holds no cache: every call
// reads the files again, so edits show up on the next request.
// A Store is safe for concurrent use.
type Store struct {
	dir       string
	ext       string
	skipBlank bool
	workers   int
	parser    *microcoso.Parser
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithExtension sets the content file extension, including the dot.
func WithExtension(ext string) StoreOption {
	return func(s *Store) {
		if ext != "" {
			s.ext = ext
		}
	}
}

// WithSkipBlankLines drops empty lines when reading files.
func WithSkipBlankLines(skip bool) StoreOption {
	return func(s *Store) {
		s.skipBlank = skip
	}
}

// WithWorkers bounds how many files List parses at once.
func WithWorkers(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewStore creates a Store over dir. A nil parser uses the package-level
// default parser.
func NewStore(dir string, parser *microcoso.Parser, opts ...StoreOption) *Store {
	s := &Store{
		dir:     dir,
		ext:     DefaultExtension,
		workers: runtime.GOMAXPROCS(0),
		parser:  parser,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the content directory.
func (s *Store) Dir() string {
	return s.dir
}

// Check reports ErrContentDir when the content directory is missing or is
// not a directory.
func (s *Store) Check() error {
	if !fileutil.DirExists(s.dir) {
		return fmt.Errorf("%w: %s", ErrContentDir, s.dir)
	}
	return nil
}

// Get loads the post named by slug. The slug is sanitized first; a slug
// that sanitizes to nothing returns ErrInvalidSlug, a missing file returns
// ErrPostNotFound.
func (s *Store) Get(slug string) (*Post, error) {
	clean := SanitizeSlug(slug)
	if clean == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	path := filepath.Join(s.dir, clean+s.ext)
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrPostNotFound, clean)
	}
	return s.load(path, clean)
}

// List loads every post in the directory, sorted with SortByDate. Files are
// parsed concurrently; the first read error cancels the rest.
func (s *Store) List(ctx context.Context) ([]*Post, error) {
	paths, err := s.scan()
	if err != nil {
		return nil, err
	}

	posts := make([]*Post, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			post, err := s.load(path, strings.TrimSuffix(filepath.Base(path), s.ext))
			if err != nil {
				return err
			}
			posts[i] = post
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	SortByDate(posts)
	return posts, nil
}

// scan returns the content files in the directory. Hidden files,
// directories and names whose slug would not survive SanitizeSlug are
// skipped, so every listed post can also be fetched by slug.
func (s *Store) scan() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentDir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, s.ext) {
			continue
		}
		slug := strings.TrimSuffix(name, s.ext)
		if slug == "" || SanitizeSlug(slug) != slug {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, name))
	}
	return paths, nil
}

// ReadPost reads and parses one content file outside any directory
// listing. The slug is the sanitized file name without its extension.
func ReadPost(path string, parser *microcoso.Parser, skipBlank bool) (*Post, error) {
	ext := filepath.Ext(path)
	s := &Store{dir: filepath.Dir(path), ext: ext, skipBlank: skipBlank, parser: parser}
	return s.load(path, SanitizeSlug(strings.TrimSuffix(filepath.Base(path), ext)))
}

func (s *Store) load(path, slug string) (*Post, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPostNotFound, slug)
		}
		return nil, fmt.Errorf("reading post %s: %w", slug, err)
	}

	lines, err := fileutil.ReadLines(path, s.skipBlank)
	if err != nil {
		return nil, fmt.Errorf("reading post %s: %w", slug, err)
	}

	var doc microcoso.Document
	if s.parser != nil {
		doc = s.parser.ParseLines(lines)
	} else {
		doc = microcoso.ParseLines(lines)
	}

	return &Post{
		Slug:      slug,
		Title:     doc.Title,
		Date:      doc.Date,
		Author:    doc.Author,
		Body:      doc.Body,
		Path:      path,
		ModTime:   info.ModTime(),
		Published: parsePublished(doc.Date),
	}, nil
}
