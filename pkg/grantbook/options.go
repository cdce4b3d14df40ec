// Package grantbook generates the program-tracking workbook template and reads it back.
package grantbook

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultOutputPath is where Generate writes when Options.OutputPath is empty.
const DefaultOutputPath = "原村管考系統_Excel匯入架構範本.xlsx"

// Mode represents the extraction mode.
type Mode string

const (
	// ModeLight extracts named ranges and records only.
	ModeLight Mode = "light"
	// ModeStandard adds cell values, merged ranges, validations and the data region of each sheet.
	ModeStandard Mode = "standard"
	// ModeVerbose extracts everything, including formula text.
	ModeVerbose Mode = "verbose"
)

// Options configures generation and extraction.
type Options struct {
	// OutputPath is the file Generate writes. Empty means DefaultOutputPath.
	OutputPath string
	// Mode specifies the extraction mode (light, standard, verbose).
	Mode Mode
	// IncludeFormulas specifies whether Extract reports formula text.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeFormulas *bool
	// CheckReferences specifies whether Extract reports unresolved lookups.
	// If nil, defaults to false for light mode, true otherwise.
	CheckReferences *bool
	// Logger receives progress messages. Nil discards them.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		OutputPath: DefaultOutputPath,
		Mode:       ModeStandard,
	}
}

// ShouldIncludeFormulas returns whether to include formula text.
func (o Options) ShouldIncludeFormulas() bool {
	if o.IncludeFormulas != nil {
		return *o.IncludeFormulas
	}
	return o.Mode == ModeVerbose
}

// ShouldCheckReferences returns whether to report unresolved lookups.
func (o Options) ShouldCheckReferences() bool {
	if o.CheckReferences != nil {
		return *o.CheckReferences
	}
	return o.Mode != ModeLight
}

func (o Options) outputPath() string {
	if o.OutputPath == "" {
		return DefaultOutputPath
	}
	return o.OutputPath
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
