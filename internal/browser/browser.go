// Package browser launches URLs in the user's default browser.
package browser

import (
	"github.com/skratchdot/open-golang/open"
)

// openFunc is used to launch the browser.
var openFunc = open.Run

// Open launches url in the default browser.
func Open(url string) error {
	return openFunc(url)
}
