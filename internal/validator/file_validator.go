// Package validator checks a file is present and readable before a job
// touches it, and checks a run's Config is internally consistent before
// the engine starts walking anything.
package validator

import (
	"fmt"
	"os"
)

// FileValidator confirms a single path is usable. The dispatcher runs
// it immediately before handing a path to the transformer, guarding
// against a file vanishing between being walked and being processed.
type FileValidator interface {
	Validate(filename string) error
}

type BasicFileValidator struct{}

func (v *BasicFileValidator) Validate(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return fmt.Errorf("file '%s' does not exist", filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("file '%s' is not readable: %v", filename, err)
	}
	defer file.Close()

	return nil
}

func NewBasicFileValidator() *BasicFileValidator {
	return &BasicFileValidator{}
}
