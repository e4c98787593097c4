package render

import (
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// spinnerInterval controls how often the spinner advances.
const spinnerInterval = 100 * time.Millisecond

// Spinner shows an indeterminate progress indicator while a search request
// is in flight.
type Spinner struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
	wg   sync.WaitGroup
}

// NewSpinner creates a spinner writing to out with the given label.
func NewSpinner(out io.Writer, label string) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	return &Spinner{
		bar:  bar,
		done: make(chan struct{}),
	}
}

// Start begins animating the spinner.
func (s *Spinner) Start() {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				_ = s.bar.Add(1)
			}
		}
	}()
}

// Stop halts the animation and clears the spinner line.
func (s *Spinner) Stop() {
	close(s.done)
	s.wg.Wait()
	_ = s.bar.Finish()
}
