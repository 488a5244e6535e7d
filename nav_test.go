package sitecapture

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
)

func TestNavigateIdle(t *testing.T) {
	t.Parallel()

	ctx, cancel := testAllocate(t, "")
	defer cancel()

	start := time.Now()
	var done bool
	if err := chromedp.Run(ctx,
		NavigateIdle(testURL("late.html"), DefaultTimeout),
		chromedp.Evaluate(`window.lateDone`, &done),
	); err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Fatal("expected the late request to have finished")
	}
	if elapsed := time.Since(start); elapsed < lateDelay {
		t.Errorf("returned after %v, before the late response", elapsed)
	}
}

func TestReloadIdle(t *testing.T) {
	t.Parallel()

	ctx, cancel := testAllocate(t, "late.html")
	defer cancel()

	var done bool
	if err := chromedp.Run(ctx,
		ReloadIdle(DefaultTimeout),
		chromedp.Evaluate(`window.lateDone`, &done),
	); err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Fatal("expected the late request of the reloaded page to have finished")
	}
}

func TestNavigateIdleUnreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := testAllocate(t, "")
	defer cancel()

	srv := httptest.NewServer(http.NotFoundHandler())
	urlstr := srv.URL
	srv.Close()

	err := chromedp.Run(ctx, NavigateIdle(urlstr, DefaultTimeout))
	if !errors.Is(err, ErrNavigation) {
		t.Fatalf("want ErrNavigation, got %v", err)
	}
}

func TestNavigateIdleTimeout(t *testing.T) {
	t.Parallel()

	ctx, cancel := testAllocate(t, "")
	defer cancel()

	// the load event doesn't wait for the pending fetch, so the page loads
	// quickly, but /late keeps the network busy for longer than the
	// timeout allows
	err := chromedp.Run(ctx, NavigateIdle(testURL("late.html"), lateDelay/4))
	if !errors.Is(err, ErrNetworkIdle) {
		t.Fatalf("want ErrNetworkIdle, got %v", err)
	}
	if errors.Is(err, ErrNavigation) {
		t.Errorf("a loaded page is not a navigation failure: %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("want the deadline kept in the error chain, got %v", err)
	}
}

func TestNavigateIdleCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := testAllocate(t, "")
	defer cancel()

	// cancel while the navigation is still waiting on /late
	runCtx, cancelRun := context.WithCancel(ctx)
	time.AfterFunc(lateDelay/4, cancelRun)
	defer cancelRun()

	err := chromedp.Run(runCtx, NavigateIdle(testURL("late.html"), DefaultTimeout))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled in the error chain, got %v", err)
	}
}
