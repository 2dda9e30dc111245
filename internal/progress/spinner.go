package progress

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Spinner shows an indeterminate scan indicator with a running entry count
type Spinner struct {
	bar          *progressbar.ProgressBar
	showProgress bool
}

// NewSpinner creates a spinner writing to writer.
// The showProgress parameter controls whether anything is drawn (typically config.ShowProgress()).
func NewSpinner(writer io.Writer, showProgress bool) *Spinner {
	if !showProgress {
		writer = io.Discard
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan]scanning[reset]"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	return &Spinner{
		bar:          bar,
		showProgress: showProgress,
	}
}

// Visit counts one scanned entry
func (s *Spinner) Visit(path string) {
	_ = s.bar.Add(1)
}

// Count returns the number of entries seen so far
func (s *Spinner) Count() int64 {
	return int64(s.bar.State().CurrentNum)
}

// Finish clears the spinner line
func (s *Spinner) Finish() error {
	return s.bar.Finish()
}
