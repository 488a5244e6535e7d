package sitecapture

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// NavigateIdle is an action that navigates the current page to urlstr and
// blocks until the new document has loaded and the network has gone idle.
//
// Network idle is Chrome's "networkIdle" lifecycle event: no network
// connections for at least 500ms. A timeout of zero waits as long as ctx
// allows.
func NavigateIdle(urlstr string, timeout time.Duration) chromedp.Action {
	return settle(timeout, chromedp.ActionFunc(func(ctx context.Context) error {
		if err := chromedp.Navigate(urlstr).Do(ctx); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrNavigation, urlstr, err)
		}
		return nil
	}))
}

// ReloadIdle is an action that reloads the current page, bypassing the
// cache, and blocks like NavigateIdle until the network has gone idle.
func ReloadIdle(timeout time.Duration) chromedp.Action {
	return settle(timeout, chromedp.ActionFunc(func(ctx context.Context) error {
		if err := page.Reload().WithIgnoreCache(true).Do(ctx); err != nil {
			return fmt.Errorf("%w: reload: %w", ErrNavigation, err)
		}
		return nil
	}))
}

// settle runs nav and waits for the networkIdle lifecycle event of the
// document it loads in the root frame.
func settle(timeout time.Duration, nav chromedp.Action) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		root := tree.Frame.ID

		lctx, lcancel := context.WithCancel(ctx)
		defer lcancel()

		// loaderID identifies the document being loaded; lifecycle events
		// of the previous document still arrive until "init" is seen.
		// Listeners run on a single goroutine, so it needs no lock.
		var loaderID cdp.LoaderID
		var once sync.Once
		idle := make(chan struct{})
		chromedp.ListenTarget(lctx, func(ev interface{}) {
			e, ok := ev.(*page.EventLifecycleEvent)
			if !ok || e.FrameID != root {
				return
			}
			switch e.Name {
			case "init":
				loaderID = e.LoaderID
			case "networkIdle":
				if loaderID != "" && e.LoaderID == loaderID {
					once.Do(func() { close(idle) })
				}
			}
		})

		if err := nav.Do(ctx); err != nil {
			return err
		}

		select {
		case <-idle:
			return nil
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrNetworkIdle, ctx.Err())
		}
	})
}
