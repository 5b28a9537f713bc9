package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/ftracker/internal/model"
)

// SamplePackages returns the built-in batch used when no input is configured.
func SamplePackages() []model.Package {
	return []model.Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// LoadPackages reads a packages file. Records keep their file order.
func LoadPackages(path string) ([]model.Package, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open packages: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only packages file.
			_ = cerr
		}
	}()
	return DecodePackages(file)
}

// DecodePackages decodes TOML packages from r.
func DecodePackages(r io.Reader) ([]model.Package, error) {
	var batch model.Batch
	md, err := toml.NewDecoder(r).Decode(&batch)
	if err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown packages key %q", undecoded[0].String())
	}
	return batch.Packages, nil
}
