package table

import (
	"strconv"
)

// ColumnID is a column's stable identity: its position in the table's current
// column order. Display letters are derived from it at render time, so
// relabeling after a removal is a pure projection of the new positions.
type ColumnID int

// Letter returns the display label for a column identity: A..Z, then AA, AB, ...
func (id ColumnID) Letter() string {
	if id < 0 {
		return ""
	}
	n := int(id)
	var b []byte
	for {
		b = append([]byte{byte('A' + n%26)}, b...)
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return string(b)
}

// Column is one subgroup of the crosstab: a display title, a sample size and
// an ordered run of percentage cells. SampleSize 0 means "unset" and excludes
// the column from significance testing.
type Column struct {
	Title      string   `json:"title"`
	SampleSize int      `json:"sample_size"`
	Cells      []string `json:"cells"`
}

// ParseCell validates and parses a raw cell value. Valid cells are integer
// percentage strings of 1-3 digits in [0,100]. Empty string is the "no data"
// state and is not a valid numeric value.
func ParseCell(raw string) (float64, bool) {
	if len(raw) < 1 || len(raw) > 3 {
		return 0, false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n > 100 {
		return 0, false
	}
	return float64(n), true
}

// ParseSampleSize parses a raw sample size. Only positive integers are valid.
func ParseSampleSize(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
