// Package model defines shared data structures.
package model

// Package is one raw sensor record: a workout type code and its positional data.
type Package struct {
	Type string    `toml:"type"`
	Data []float64 `toml:"data"`
}

// Batch is an ordered list of packages as stored in a packages file.
type Batch struct {
	Packages []Package `toml:"package"`
}

// ReportConfig defines report run settings.
type ReportConfig struct {
	Input string
}
