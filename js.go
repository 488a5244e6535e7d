package sitecapture

import (
	_ "embed"
)

var (
	// scrollIntoCenterJS is a javascript function that smoothly scrolls the
	// first element matching a selector to the center of the viewport,
	// returning false if nothing matched.
	//go:embed js/scrollIntoCenter.js
	scrollIntoCenterJS string
)
