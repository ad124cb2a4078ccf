package models

// MergedRange represents a merged cell region with its anchor.
type MergedRange struct {
	// Ref is the range reference as stored in the sheet (e.g. "A1:C2").
	Ref string `json:"ref"`
	// Anchor is the top-left cell name holding the visible value.
	Anchor string `json:"anchor"`
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// IsAnchor reports whether the 1-based (col, row) is the range's top-left cell.
func (m MergedRange) IsAnchor(col, row int) bool {
	return col == m.C1 && row == m.R1
}
