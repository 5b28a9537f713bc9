// Package workout computes distance, speed and calorie metrics for training sessions.
package workout

import "math"

const (
	// MetersPerKm converts meters to kilometers.
	MetersPerKm = 1000
	// MinutesPerHour converts hours to minutes.
	MinutesPerHour = 60

	stepLengthKm   = 0.65
	strokeLengthKm = 1.38
)

// Workout is a single training session built from sensor data.
// The variant set is closed: Running, SportsWalking and Swimming.
type Workout interface {
	// Distance returns the covered distance in kilometers.
	Distance() float64
	// MeanSpeed returns the average speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the burned kilocalories.
	SpentCalories() float64
	// Info assembles the summary for the session.
	Info() InfoMessage

	isWorkout()
}

func distanceKm(action int, stepLength float64) float64 {
	return float64(action) * stepLength / MetersPerKm
}

func meanSpeedKmh(distance, durationH float64) float64 {
	return distance / durationH
}

func newInfo(label string, durationH float64, w Workout) InfoMessage {
	return InfoMessage{
		TrainingType: label,
		DurationH:    durationH,
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}
}

// floorDiv divides a by b and floors the quotient toward negative infinity,
// matching floor division on floating point operands.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}
