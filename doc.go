// Package sitecapture drives a headless Chrome through a fixed capture
// sequence against a locally served site: the visible viewport, the
// navigation bar, the services card grid, and the hover state of the first
// service card.
//
// The sequence is built from chromedp actions, so each step blocks until the
// browser reports completion before the next one starts.
package sitecapture
