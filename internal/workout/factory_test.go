package workout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPackage(t *testing.T) {
	w, err := ReadPackage("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)
	assert.Equal(t, Swimming{Action: 720, DurationH: 1, Weight: 80, LengthPool: 25, CountPool: 40}, w)

	w, err = ReadPackage("RUN", []float64{15000, 1, 75})
	require.NoError(t, err)
	assert.Equal(t, Running{Action: 15000, DurationH: 1, Weight: 75}, w)

	w, err = ReadPackage("WLK", []float64{9000, 1, 75, 180})
	require.NoError(t, err)
	assert.Equal(t, SportsWalking{Action: 9000, DurationH: 1, Weight: 75, Height: 180}, w)
}

func TestReadPackageUnknownType(t *testing.T) {
	for _, code := range []string{"XXX", "", "run", "SWIM"} {
		w, err := ReadPackage(code, []float64{1, 1, 1})
		assert.ErrorIs(t, err, ErrUnknownWorkoutType, "code %q", code)
		assert.Nil(t, w)
	}
}

func TestReadPackageArity(t *testing.T) {
	tests := []struct {
		code string
		data []float64
	}{
		{code: "RUN", data: []float64{15000, 1}},
		{code: "RUN", data: []float64{15000, 1, 75, 180}},
		{code: "WLK", data: []float64{9000, 1, 75}},
		{code: "SWM", data: []float64{720, 1, 80, 25}},
		{code: "SWM", data: nil},
	}
	for _, tt := range tests {
		_, err := ReadPackage(tt.code, tt.data)
		assert.ErrorIs(t, err, ErrArity, "%s %v", tt.code, tt.data)
	}
}

func TestReadPackageInvalidParameter(t *testing.T) {
	tests := []struct {
		name string
		code string
		data []float64
	}{
		{name: "fractional action", code: "RUN", data: []float64{100.5, 1, 75}},
		{name: "negative action", code: "RUN", data: []float64{-1, 1, 75}},
		{name: "nan action", code: "RUN", data: []float64{math.NaN(), 1, 75}},
		{name: "zero weight", code: "RUN", data: []float64{100, 1, 0}},
		{name: "fractional laps", code: "SWM", data: []float64{720, 1, 80, 25, 40.5}},
		{name: "zero height", code: "WLK", data: []float64{9000, 1, 75, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPackage(tt.code, tt.data)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestReadPackageRejectsNonPositiveDuration(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := ReadPackage("RUN", []float64{15000, d, 75})
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration %v", d)
	}
}

func TestTypes(t *testing.T) {
	got := Types()
	require.Len(t, got, 3)
	codes := []string{got[0].Code, got[1].Code, got[2].Code}
	assert.Equal(t, []string{"SWM", "RUN", "WLK"}, codes)
	assert.Len(t, got[0].Params, 5)
	assert.Len(t, got[1].Params, 3)
	assert.Len(t, got[2].Params, 4)
}
