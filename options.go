package sitecapture

import (
	"context"
	"io"
	"time"
)

// Option is a Sequencer option.
type Option = func(*Sequencer)

// WithURL sets the page to capture. It defaults to DefaultURL.
func WithURL(urlstr string) Option {
	return func(s *Sequencer) {
		s.url = urlstr
	}
}

// WithOutputDir sets the directory the images are written to. It defaults
// to DefaultOutputDir.
func WithOutputDir(dir string) Option {
	return func(s *Sequencer) {
		s.outDir = dir
	}
}

// WithStdout sets where progress lines are written. It defaults to
// os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(s *Sequencer) {
		s.stdout = w
	}
}

// WithLogf is a Sequencer option to specify a func to receive general
// logging.
func WithLogf(f LogFunc) Option {
	return func(s *Sequencer) {
		s.logf = f
	}
}

// WithDebugf is a Sequencer option to specify a func to receive debug
// logging. When the Sequencer starts its own browser, f also receives the
// protocol traffic.
func WithDebugf(f LogFunc) Option {
	return func(s *Sequencer) {
		s.debugf = f
	}
}

// WithBrowser makes the Sequencer open its page on an already running
// browser instead of starting one. ctx must be a chromedp context whose
// browser has been started. The browser is left running after Run.
func WithBrowser(ctx context.Context) Option {
	return func(s *Sequencer) {
		s.browserCtx = ctx
	}
}

// WithLocateTimeout sets how long an element may take to appear before the
// run is aborted.
func WithLocateTimeout(d time.Duration) Option {
	return func(s *Sequencer) {
		s.locateTimeout = d
	}
}

// WithNavigateTimeout sets how long a navigation may take to become
// network idle before the run is aborted.
func WithNavigateTimeout(d time.Duration) Option {
	return func(s *Sequencer) {
		s.navigateTimeout = d
	}
}
