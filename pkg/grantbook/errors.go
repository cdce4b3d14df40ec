package grantbook

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// BuildError represents an error while populating a sheet.
type BuildError struct {
	SheetName string
	Component string // "sheet", "title", "header", "rows", "widths", "names", "validations", "legend", "notices"
	Err       error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(sheetName, component string, err error) *BuildError {
	return &BuildError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

// WriteError represents a failure to write the workbook file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
