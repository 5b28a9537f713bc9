// Package report emits workout summaries.
package report

import (
	"fmt"
	"io"

	"github.com/verte-zerg/ftracker/internal/model"
	"github.com/verte-zerg/ftracker/internal/workout"
)

// Show writes the summary line for a single workout.
func Show(w io.Writer, wk workout.Workout) error {
	info := wk.Info()
	_, err := fmt.Fprintln(w, info.Message())
	return err
}

// Run processes packages in order and writes one line per package.
// The first invalid package aborts the run; lines already written are kept.
func Run(w io.Writer, pkgs []model.Package) error {
	for i, pkg := range pkgs {
		wk, err := workout.ReadPackage(pkg.Type, pkg.Data)
		if err != nil {
			return fmt.Errorf("package %d (%s): %w", i+1, pkg.Type, err)
		}
		if err := Show(w, wk); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
