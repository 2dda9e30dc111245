package output

import (
	"io/fs"

	"github.com/mitchellh/colorstring"
)

// Kind classifies a directory entry for rendering and counting
type Kind int

const (
	// KindOther covers symlinks, sockets, devices and pipes. They are neither rendered nor counted.
	KindOther Kind = iota
	KindDirectory
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "other"
	}
}

// KindOf maps file mode bits to a Kind without following symlinks
func KindOf(mode fs.FileMode) Kind {
	switch {
	case mode.IsDir():
		return KindDirectory
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// Styler decorates entry names according to their Kind
type Styler struct {
	dirStart string
	dirEnd   string
}

// NewStyler returns a Styler that highlights directories in blue when color is true
func NewStyler(color bool) *Styler {
	c := colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !color,
	}
	// Codes are expanded on their own so that brackets in entry names are never interpreted.
	return &Styler{
		dirStart: c.Color("[blue]"),
		dirEnd:   c.Color("[reset]"),
	}
}

func (s *Styler) Style(kind Kind, name string) string {
	if s == nil || kind != KindDirectory {
		return name
	}
	return s.dirStart + name + s.dirEnd
}
