package models

// Validation represents a data validation rule attached to a cell range.
type Validation struct {
	// Sqref is the range the rule applies to, e.g. C6:C100.
	Sqref string `json:"sqref" yaml:"sqref"`
	// Type is the validation type (list, whole, decimal...).
	Type string `json:"type" yaml:"type"`
	// Source is formula1: a defined name, a range, or a quoted inline list.
	Source      string `json:"source" yaml:"source"`
	AllowBlank  bool   `json:"allow_blank" yaml:"allow_blank"`
	ErrorTitle  string `json:"error_title,omitempty" yaml:"error_title,omitempty"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
	PromptTitle string `json:"prompt_title,omitempty" yaml:"prompt_title,omitempty"`
	Prompt      string `json:"prompt,omitempty" yaml:"prompt,omitempty"`
}
