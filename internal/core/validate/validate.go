// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// Required rejects values that are empty after trimming whitespace.
func Required(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

// FileName validates a bare file name: non-empty, no directory components, and
// not "." or "..".
func FileName(name string) error {
	if err := Required(name); err != nil {
		return err
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("must be a file name, not a path")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("must be a file name")
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("must not contain NUL bytes")
	}
	return nil
}

// FileNameField returns a criterio validator for file names.
func FileNameField(field, name string) error {
	return criterio.Run(field, name, FileName)
}
