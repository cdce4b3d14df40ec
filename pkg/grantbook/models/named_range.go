package models

// NamedRange represents a defined name that refers to a cell range.
type NamedRange struct {
	// Name is the defined name.
	Name string `json:"name" yaml:"name"`
	// Sheet is the sheet the reference points at (unquoted).
	Sheet string `json:"sheet" yaml:"sheet"`
	// Range is the absolute range reference, e.g. $B$6:$B$20.
	Range string `json:"range" yaml:"range"`
	// Scope is "Workbook" or the owning sheet name.
	Scope string `json:"scope" yaml:"scope"`
}

// RefersTo returns the name's reference in Sheet!Range form.
func (n NamedRange) RefersTo() string {
	if n.Sheet == "" {
		return n.Range
	}
	return n.Sheet + "!" + n.Range
}
