// Package walker prints a directory tree in depth-first pre-order while it
// is being traversed, counting the directories and files it renders.
package walker

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/tympanix/lls/internal/logger"
	"github.com/tympanix/lls/internal/output"
)

// State accumulates the counts of a single walk
type State struct {
	Dirs  uint64
	Files uint64
	// Errors counts recoverable failures that were reported and skipped
	Errors uint64
}

// Progress is notified of every entry that passes the hidden filter
type Progress interface {
	Visit(path string)
}

type Option func(*Walker)

// WithOutput sets the sink the tree is written to (default os.Stdout)
func WithOutput(w io.Writer) Option {
	return func(wk *Walker) { wk.out = w }
}

// WithLogger sets where recoverable errors are reported (default os.Stderr)
func WithLogger(l logger.Logger) Option {
	return func(wk *Walker) { wk.logger = l }
}

func WithStyler(s *output.Styler) Option {
	return func(wk *Walker) { wk.styler = s }
}

func WithSort(order SortOrder) Option {
	return func(wk *Walker) { wk.sort = order }
}

func WithProgress(p Progress) Option {
	return func(wk *Walker) { wk.progress = p }
}

// WithFS replaces the function that opens the root as a filesystem (default os.DirFS)
func WithFS(open func(root string) fs.FS) Option {
	return func(wk *Walker) { wk.openFS = open }
}

type Walker struct {
	includeHidden bool
	out           io.Writer
	logger        logger.Logger
	styler        *output.Styler
	sort          SortOrder
	progress      Progress
	openFS        func(root string) fs.FS
}

func New(includeHidden bool, opts ...Option) *Walker {
	w := &Walker{
		includeHidden: includeHidden,
		out:           os.Stdout,
		logger:        logger.New(os.Stderr),
		sort:          SortNone,
		openFS:        os.DirFS,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk prints the tree rooted at root and returns the final counts
func Walk(root string, includeHidden bool, opts ...Option) (State, error) {
	return New(includeHidden, opts...).Walk(root)
}

// Walk writes the root header, every visible entry and the summary line.
// Failing to list root itself is returned as a *ListingError and no summary
// is written. Listing or stat failures below the root are logged, counted in
// State.Errors and skipped.
func (w *Walker) Walk(root string) (State, error) {
	var state State
	tw := output.NewTreeWriter(w.out, w.styler)

	if err := tw.Header(root); err != nil {
		return state, outputError(err)
	}

	fsys := w.openFS(root)
	entries, err := w.list(fsys, ".")
	if err != nil {
		return state, &ListingError{Path: root, Err: err}
	}

	r := &run{Walker: w, state: &state, tree: tw, fsys: fsys, root: root}
	if err := r.visit(".", entries, 1); err != nil {
		return state, err
	}

	if err := tw.Summary(state.Dirs, state.Files); err != nil {
		return state, outputError(err)
	}
	return state, nil
}

// list reads all children of dir and releases the handle before returning
func (w *Walker) list(fsys fs.FS, dir string) ([]fs.DirEntry, error) {
	f, err := fsys.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd, ok := f.(fs.ReadDirFile)
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: dir, Err: fs.ErrInvalid}
	}
	entries, err := rd.ReadDir(-1)
	if err != nil {
		return nil, err
	}
	sortEntries(entries, w.sort)
	return entries, nil
}

type run struct {
	*Walker
	state *State
	tree  *output.TreeWriter
	fsys  fs.FS
	root  string
}

func (r *run) visit(dir string, entries []fs.DirEntry, depth int) error {
	for _, entry := range entries {
		name := entry.Name()
		rel := path.Join(dir, name)

		if !r.includeHidden && isHidden(name) {
			continue
		}
		kind, err := classify(entry)
		if err != nil {
			r.report(&EntryError{Path: r.display(rel), Err: err})
			continue
		}

		switch kind {
		case output.KindDirectory:
			if err := r.tree.Entry(depth, kind, name); err != nil {
				return outputError(err)
			}
			r.state.Dirs++
			r.notify(rel)
			if err := r.descend(rel, depth+1); err != nil {
				return err
			}
		case output.KindFile:
			if err := r.tree.Entry(depth, kind, name); err != nil {
				return outputError(err)
			}
			r.state.Files++
			r.notify(rel)
		default:
			r.logger.Verbosef("skipping %s (%s)", r.display(rel), kind)
		}
	}
	return nil
}

// descend lists dir and visits its children. A listing failure only abandons this branch.
func (r *run) descend(dir string, depth int) error {
	entries, err := r.list(r.fsys, dir)
	if err != nil {
		r.report(&ListingError{Path: r.display(dir), Err: err})
		return nil
	}
	return r.visit(dir, entries, depth)
}

func (r *run) report(err error) {
	r.state.Errors++
	r.logger.Errorf("%v", err)
}

func (r *run) notify(rel string) {
	if r.progress != nil {
		r.progress.Visit(rel)
	}
}

func (r *run) display(rel string) string {
	return filepath.Join(r.root, filepath.FromSlash(rel))
}

func classify(entry fs.DirEntry) (output.Kind, error) {
	info, err := entry.Info()
	if err != nil {
		return output.KindOther, err
	}
	return output.KindOf(info.Mode()), nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
