package sitecapture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chromedp/chromedp"
)

// CaptureViewport is an action that captures a PNG of the visible browser
// viewport. The result has the viewport's size, not the page's.
func CaptureViewport(res *[]byte) chromedp.Action {
	if res == nil {
		panic("res cannot be nil")
	}
	return chromedp.CaptureScreenshot(res)
}

// CaptureElement is an action that captures a PNG clipped to the bounding
// box of the first element matching the CSS selector sel.
//
// The element is expected to be present already; see Locate.
func CaptureElement(sel string, res *[]byte) chromedp.Action {
	if res == nil {
		panic("res cannot be nil")
	}
	return chromedp.Screenshot(sel, res, chromedp.ByQuery)
}

// SaveTo is an action that writes *buf to dir/name, creating dir if needed
// and replacing any existing file.
func SaveTo(dir, name string, buf *[]byte) chromedp.Action {
	return chromedp.ActionFunc(func(context.Context) error {
		if len(*buf) == 0 {
			return fmt.Errorf("no image data for %s", name)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, name), *buf, 0o644)
	})
}
