package walker

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrOutput marks failures writing the tree itself. They always end the walk.
var ErrOutput = errors.New("failed to write output")

// ListingError reports a directory whose children could not be enumerated
type ListingError struct {
	Path string
	Err  error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("cannot list %s: %v", e.Path, cause(e.Err))
}

func (e *ListingError) Unwrap() error {
	return e.Err
}

// EntryError reports an entry whose type could not be determined
type EntryError struct {
	Path string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("cannot stat %s: %v", e.Path, cause(e.Err))
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// cause drops the fs-relative path from a PathError, the caller already knows the full path
func cause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

func outputError(err error) error {
	return fmt.Errorf("%w: %w", ErrOutput, err)
}
