package tui

import "fmt"

// BuildInfo holds build-time metadata for display in the TUI.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (%s) %s", b.Version, b.Commit, b.Date)
}
