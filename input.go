package sitecapture

import (
	"context"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
)

// Hover is an action that moves the mouse pointer over the center of the
// first element matching the CSS selector sel, scrolling it into view first
// if needed. The pointer stays there, so the element keeps its :hover
// styles until something else moves it.
func Hover(sel string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		n, err := first(ctx, sel, 0)
		if err != nil {
			return err
		}
		return hoverNode(ctx, n)
	})
}

func hoverNode(ctx context.Context, n *cdp.Node) error {
	if err := dom.ScrollIntoViewIfNeeded().WithNodeID(n.NodeID).Do(ctx); err != nil {
		return err
	}

	box, err := dom.GetBoxModel().WithNodeID(n.NodeID).Do(ctx)
	if err != nil {
		return err
	}

	// the content quad is in viewport coordinates
	c := len(box.Content)
	if c == 0 || c%2 != 0 {
		return ErrInvalidBoxModel
	}
	var x, y float64
	for i := 0; i < c; i += 2 {
		x += box.Content[i]
		y += box.Content[i+1]
	}
	x /= float64(c / 2)
	y /= float64(c / 2)

	return input.DispatchMouseEvent(input.MouseMoved, x, y).Do(ctx)
}
