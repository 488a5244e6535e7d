package sitecapture

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

// Locate is an action that waits for an element matching the CSS selector
// sel to be present in the page.
//
// If none appears within timeout, the returned error wraps ErrNoMatch. A
// timeout of zero waits as long as ctx allows.
func Locate(sel string, timeout time.Duration) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		_, err := first(ctx, sel, timeout)
		return err
	})
}

// ScrollIntoCenter is an action that smoothly scrolls the first element
// matching the CSS selector sel to the center of the viewport. It doesn't
// wait for the scroll to finish.
//
// A missing element is not an error; found reports whether one matched.
func ScrollIntoCenter(sel string, found *bool) chromedp.Action {
	if found == nil {
		panic("found cannot be nil")
	}
	expr := strings.TrimSpace(scrollIntoCenterJS) + "(" + strconv.Quote(sel) + ")"
	return chromedp.Evaluate(expr, found)
}

// first returns the first element matching sel, waiting up to timeout for
// one to appear.
func first(ctx context.Context, sel string, timeout time.Duration) (*cdp.Node, error) {
	qctx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		qctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var nodes []*cdp.Node
	if err := chromedp.Nodes(sel, &nodes, chromedp.ByQuery).Do(qctx); err != nil {
		// only our own deadline means the element never showed up
		if qctx.Err() != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: %q after %v", ErrNoMatch, sel, timeout)
		}
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, sel)
	}
	return nodes[0], nil
}
