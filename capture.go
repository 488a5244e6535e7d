package sitecapture

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chromedp/chromedp"
)

// Capture defaults.
const (
	// DefaultURL is the locally served site that gets captured.
	DefaultURL = "http://localhost:8082"

	// DefaultOutputDir is where the images are written, relative to the
	// working directory.
	DefaultOutputDir = "screenshots"

	// DefaultTimeout bounds each navigation and each element lookup.
	DefaultTimeout = 30 * time.Second

	ViewportWidth  = 1920
	ViewportHeight = 1080
)

// Selectors of the page sections that get captured.
const (
	NavSelector  = "nav"
	GridSelector = ".services-grid"
	CardSelector = ".service-card"
)

const (
	// scrollDelay lets the smooth scroll to the grid finish.
	scrollDelay = 1000 * time.Millisecond
	// hoverDelay lets the card's hover transition finish.
	hoverDelay = 500 * time.Millisecond
)

// Shot is one of the images written by a capture run.
type Shot struct {
	Name string // what the image shows
	File string // file name inside the output directory
}

// The images, in the order they are captured.
var (
	HeroShot   = Shot{Name: "hero section", File: "hero-section-full.png"}
	NavbarShot = Shot{Name: "navbar", File: "navbar-glassmorphism.png"}
	CardsShot  = Shot{Name: "service cards", File: "service-cards.png"}
	HoverShot  = Shot{Name: "service card hover", File: "service-card-hover.png"}
)

// Shots returns the images a successful run writes, in capture order.
func Shots() []Shot {
	return []Shot{HeroShot, NavbarShot, CardsShot, HoverShot}
}

// Sequencer drives one browser page through the capture sequence.
type Sequencer struct {
	url    string
	outDir string
	stdout io.Writer

	logf   LogFunc
	debugf LogFunc

	browserCtx context.Context

	locateTimeout   time.Duration
	navigateTimeout time.Duration
}

// New creates a Sequencer capturing DefaultURL into DefaultOutputDir.
func New(opts ...Option) *Sequencer {
	s := &Sequencer{
		url:             DefaultURL,
		outDir:          DefaultOutputDir,
		stdout:          os.Stdout,
		logf:            Logger.Printf,
		locateTimeout:   DefaultTimeout,
		navigateTimeout: DefaultTimeout,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// step is one stage of the capture sequence. name prefixes the error if the
// action fails.
type step struct {
	name   string
	action chromedp.Action
}

// Run performs the capture sequence: it opens a page in a fresh browser
// context, loads and hard-reloads the site, and writes the four images in
// Shots order, printing a progress line as each stage completes.
//
// Run stops at the first failing step. Images written by earlier steps are
// left in place.
func (s *Sequencer) Run(ctx context.Context) error {
	browserCtx := s.browserCtx
	closeBrowser := func() error { return nil }
	if browserCtx == nil {
		bctx, cancel, err := NewBrowser(ctx, s.browserOptions()...)
		if err != nil {
			return fmt.Errorf("launch browser: %w", err)
		}
		defer cancel()
		browserCtx = bctx
		closeBrowser = func() error { return chromedp.Cancel(bctx) }
	}

	// a new browser context keeps cookies and storage from leaking
	// between runs on a shared browser
	pageCtx, cancel := chromedp.NewContext(browserCtx, chromedp.WithNewBrowserContext())
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	for _, st := range s.steps() {
		s.debug("step: %s", st.name)
		if err := chromedp.Run(pageCtx, st.action); err != nil {
			return fmt.Errorf("%s: %w", st.name, err)
		}
	}

	if err := chromedp.Cancel(pageCtx); err != nil {
		return fmt.Errorf("close page: %w", err)
	}
	if err := closeBrowser(); err != nil {
		return fmt.Errorf("close browser: %w", err)
	}
	return s.println("All screenshots captured successfully!")
}

func (s *Sequencer) steps() []step {
	var hero, navbar, cards, hover []byte
	var scrolled bool
	return []step{
		{"open page", chromedp.EmulateViewport(ViewportWidth, ViewportHeight)},
		{"navigate", NavigateIdle(s.url, s.navigateTimeout)},
		{"reload", chromedp.Tasks{
			ReloadIdle(s.navigateTimeout),
			s.progress("Page loaded successfully"),
		}},
		{"capture " + HeroShot.Name, chromedp.Tasks{
			CaptureViewport(&hero),
			s.save(HeroShot, &hero),
			s.progress("Hero section screenshot saved"),
		}},
		{"capture " + NavbarShot.Name, chromedp.Tasks{
			Locate(NavSelector, s.locateTimeout),
			CaptureElement(NavSelector, &navbar),
			s.save(NavbarShot, &navbar),
			s.progress("Navbar screenshot saved"),
		}},
		{"scroll to " + GridSelector, chromedp.Tasks{
			ScrollIntoCenter(GridSelector, &scrolled),
			chromedp.ActionFunc(func(context.Context) error {
				s.debug("scrolled %s into view: %v", GridSelector, scrolled)
				return nil
			}),
			chromedp.Sleep(scrollDelay),
		}},
		{"capture " + CardsShot.Name, chromedp.Tasks{
			Locate(GridSelector, s.locateTimeout),
			CaptureElement(GridSelector, &cards),
			s.save(CardsShot, &cards),
			s.progress("Service cards screenshot saved"),
		}},
		{"hover " + CardSelector, chromedp.Tasks{
			Locate(CardSelector, s.locateTimeout),
			Hover(CardSelector),
			chromedp.Sleep(hoverDelay),
		}},
		{"capture " + HoverShot.Name, chromedp.Tasks{
			CaptureElement(CardSelector, &hover),
			s.save(HoverShot, &hover),
			s.progress("Service card hover screenshot saved"),
		}},
	}
}

func (s *Sequencer) browserOptions() []chromedp.ContextOption {
	opts := []chromedp.ContextOption{
		chromedp.WithLogf(s.logf),
		chromedp.WithErrorf(s.logf),
	}
	if s.debugf != nil {
		opts = append(opts, chromedp.WithDebugf(s.debugf))
	}
	return opts
}

func (s *Sequencer) save(shot Shot, buf *[]byte) chromedp.Action {
	return SaveTo(s.outDir, shot.File, buf)
}

func (s *Sequencer) progress(line string) chromedp.Action {
	return chromedp.ActionFunc(func(context.Context) error {
		return s.println(line)
	})
}

func (s *Sequencer) println(line string) error {
	_, err := fmt.Fprintln(s.stdout, line)
	return err
}

func (s *Sequencer) debug(format string, args ...interface{}) {
	if s.debugf != nil {
		s.debugf(format, args...)
	}
}
