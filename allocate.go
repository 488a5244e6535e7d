package sitecapture

import (
	"context"
	"os"

	"github.com/chromedp/chromedp"
)

// AllocatorOptions returns the options used to launch the capture browser:
// chromedp's headless defaults with the window sized to the capture
// viewport.
//
// The environment may point at a specific binary with SITECAPTURE_EXEC_PATH,
// otherwise chromedp looks for a Chrome or Chromium on PATH.
// SITECAPTURE_NO_SANDBOX disables the sandbox, which is needed when running
// as root inside a container.
func AllocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)

	// disabling the GPU helps portability with some systems like CI
	// runners, and doesn't change what the screenshots look like
	opts = append(opts,
		chromedp.DisableGPU,
		chromedp.WindowSize(ViewportWidth, ViewportHeight),
	)

	if path := execPath(); path != "" {
		opts = append(opts, chromedp.ExecPath(path))
	}
	if envEnabled("SITECAPTURE_NO_SANDBOX") {
		opts = append(opts, chromedp.NoSandbox)
	}
	return opts
}

// DebugEnabled reports whether SITECAPTURE_DEBUG asks for protocol
// tracing.
func DebugEnabled() bool {
	return envEnabled("SITECAPTURE_DEBUG")
}

// NewBrowser starts a headless browser with AllocatorOptions and returns
// its chromedp context. Cancelling the returned func closes the browser and
// frees its temporary profile.
func NewBrowser(parent context.Context, opts ...chromedp.ContextOption) (context.Context, context.CancelFunc, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, AllocatorOptions()...)
	ctx, cancel := chromedp.NewContext(allocCtx, opts...)

	// start the browser now, so that pages can be opened in their own
	// browser contexts on top of it
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		allocCancel()
		return nil, nil, err
	}
	return ctx, func() {
		cancel()
		allocCancel()
	}, nil
}

func envEnabled(name string) bool {
	v := os.Getenv(name)
	return v != "" && v != "false"
}

// execPath returns the browser binary set in the environment, or "" to let
// chromedp search PATH for one.
func execPath() string {
	return os.Getenv("SITECAPTURE_EXEC_PATH")
}
