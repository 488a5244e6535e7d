// Command sitecapture captures the site served at http://localhost:8082:
// the hero viewport, the navbar, the services grid and a hovered service
// card, written as PNGs under ./screenshots.
//
// Set SITECAPTURE_EXEC_PATH to choose the browser binary,
// SITECAPTURE_NO_SANDBOX=true when running as root in a container, and
// SITECAPTURE_DEBUG=true to trace the DevTools protocol traffic.
package main

import (
	"context"
	"os"
	"os/signal"

	"example.com/sitecapture"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var opts []sitecapture.Option
	if sitecapture.DebugEnabled() {
		opts = append(opts, sitecapture.WithDebugf(sitecapture.Logger.Printf))
	}

	if err := sitecapture.New(opts...).Run(ctx); err != nil {
		stop()
		sitecapture.Logger.Fatal(err)
	}
}
