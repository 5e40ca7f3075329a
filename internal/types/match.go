package types

// Match is a located occurrence of a glossary term within a text, paired
// with its explanation. Start and End are half-open byte offsets into the
// scanned text; SurfaceText preserves the original casing, so
// text[Start:End] == SurfaceText always holds.
//
// Matches are produced sorted by Start. Overlapping matches from different
// dictionary keys are all retained; no term takes priority over another.
type Match struct {
	SurfaceText string `json:"term"`
	Explanation string `json:"explanation"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
}

// Overlaps reports whether two matches cover a common span of text.
func (m Match) Overlaps(other Match) bool {
	return m.Start < other.End && other.Start < m.End
}
