package workout

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrUnknownWorkoutType is returned for a type code outside the supported set.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrArity is returned when the parameter count does not match the workout type.
	ErrArity = errors.New("wrong number of parameters")
	// ErrInvalidParameter is returned for a value that cannot populate its field.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidDuration is returned when the session duration is not positive.
	ErrInvalidDuration = errors.New("duration must be greater than 0")
)

// Supported workout type codes.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// Type describes a workout type code and its positional parameters.
type Type struct {
	Code   string
	Name   string
	Params []string

	build func(b base, extra []float64) (Workout, error)
}

type base struct {
	action    int
	durationH float64
	weight    float64
}

var types = []Type{
	{
		Code:   CodeSwimming,
		Name:   "Swimming",
		Params: []string{"action", "duration_h", "weight_kg", "pool_length_m", "pool_laps"},
		build: func(b base, extra []float64) (Workout, error) {
			laps, err := intParam("pool_laps", extra[1])
			if err != nil {
				return nil, err
			}
			return Swimming{
				Action:     b.action,
				DurationH:  b.durationH,
				Weight:     b.weight,
				LengthPool: extra[0],
				CountPool:  laps,
			}, nil
		},
	},
	{
		Code:   CodeRunning,
		Name:   "Running",
		Params: []string{"action", "duration_h", "weight_kg"},
		build: func(b base, _ []float64) (Workout, error) {
			return Running{Action: b.action, DurationH: b.durationH, Weight: b.weight}, nil
		},
	},
	{
		Code:   CodeWalking,
		Name:   "SportsWalking",
		Params: []string{"action", "duration_h", "weight_kg", "height_cm"},
		build: func(b base, extra []float64) (Workout, error) {
			height := extra[0]
			if height == 0 || math.IsNaN(height) {
				return nil, fmt.Errorf("%w: height_cm must be non-zero, got %v", ErrInvalidParameter, height)
			}
			return SportsWalking{Action: b.action, DurationH: b.durationH, Weight: b.weight, Height: height}, nil
		},
	},
}

// Types returns the supported workout types in a stable order.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// ReadPackage builds a workout from a type code and positional sensor data.
// The data order is action, duration_h, weight_kg followed by the variant fields.
func ReadPackage(code string, data []float64) (Workout, error) {
	wt, ok := lookupType(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
	if len(data) != len(wt.Params) {
		return nil, fmt.Errorf("%w: %s expects %d values (%s), got %d",
			ErrArity, wt.Code, len(wt.Params), strings.Join(wt.Params, ", "), len(data))
	}
	b, err := readBase(data)
	if err != nil {
		return nil, err
	}
	return wt.build(b, data[3:])
}

func lookupType(code string) (Type, bool) {
	for _, wt := range types {
		if wt.Code == code {
			return wt, true
		}
	}
	return Type{}, false
}

func readBase(data []float64) (base, error) {
	action, err := intParam("action", data[0])
	if err != nil {
		return base{}, err
	}
	if action < 0 {
		return base{}, fmt.Errorf("%w: action must be >= 0, got %d", ErrInvalidParameter, action)
	}
	durationH := data[1]
	if !(durationH > 0) || math.IsInf(durationH, 1) {
		return base{}, fmt.Errorf("%w: got %v", ErrInvalidDuration, durationH)
	}
	weight := data[2]
	if !(weight > 0) || math.IsInf(weight, 1) {
		return base{}, fmt.Errorf("%w: weight_kg must be > 0, got %v", ErrInvalidParameter, weight)
	}
	return base{action: action, durationH: durationH, weight: weight}, nil
}

func intParam(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidParameter, name, v)
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: %s out of range, got %v", ErrInvalidParameter, name, v)
	}
	return int(v), nil
}
