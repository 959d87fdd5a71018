package components

import (
	"strings"
	"sync"
)

const maxCachedPad = 120

var (
	padCache [maxCachedPad + 1]string
	padOnce  sync.Once
)

// Pad returns a string of n spaces. Widths up to maxCachedPad are served from
// a cache built on first use.
func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	if n > maxCachedPad {
		return strings.Repeat(" ", n)
	}
	padOnce.Do(func() {
		for i := range padCache {
			padCache[i] = strings.Repeat(" ", i)
		}
	})
	return padCache[n]
}
