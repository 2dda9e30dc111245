package output

import (
	"fmt"
	"io"
	"strings"
)

const (
	Connector   = "└── "
	IndentWidth = 2
)

type flusher interface {
	Flush() error
}

// TreeWriter renders the header, entry and summary lines of a tree.
// Each line is flushed as soon as it is written.
type TreeWriter struct {
	writer io.Writer
	styler *Styler
}

func NewTreeWriter(writer io.Writer, styler *Styler) *TreeWriter {
	return &TreeWriter{writer: writer, styler: styler}
}

// Header writes the root path exactly as given
func (t *TreeWriter) Header(root string) error {
	return t.line(root)
}

// Entry writes one entry line. Names that are not valid UTF-8 are shown with U+FFFD in place of the bad bytes.
func (t *TreeWriter) Entry(depth int, kind Kind, name string) error {
	name = strings.ToValidUTF8(name, "\uFFFD")
	return t.line(Indent(depth) + Connector + t.styler.Style(kind, name))
}

func (t *TreeWriter) Summary(dirs, files uint64) error {
	return t.line(FormatSummary(dirs, files))
}

func (t *TreeWriter) line(s string) error {
	if _, err := io.WriteString(t.writer, s+"\n"); err != nil {
		return err
	}
	if f, ok := t.writer.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Indent returns the leading whitespace for an entry at the given depth
func Indent(depth int) string {
	if depth < 0 {
		depth = 0
	}
	return strings.Repeat(" ", depth*IndentWidth)
}

// FormatSummary renders e.g. "1 directory, 2 files"
func FormatSummary(dirs, files uint64) string {
	return fmt.Sprintf("%d %s, %d %s",
		dirs, plural(dirs, "directory", "directories"),
		files, plural(files, "file", "files"))
}

func plural(n uint64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
