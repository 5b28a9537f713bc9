package workout

const (
	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2
)

// Swimming is a pool swimming session. Action counts strokes.
type Swimming struct {
	Action     int
	DurationH  float64
	Weight     float64
	LengthPool float64
	CountPool  int
}

// Distance returns the nominal stroke distance in kilometers.
// MeanSpeed does not use it.
func (s Swimming) Distance() float64 {
	return distanceKm(s.Action, strokeLengthKm)
}

// MeanSpeed returns the average speed in km/h derived from pool geometry.
func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / MetersPerKm / s.DurationH
}

// SpentCalories returns the burned kilocalories.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingSpeedShift) * swimmingWeightMultiplier * s.Weight
}

// Info assembles the summary for the session.
func (s Swimming) Info() InfoMessage {
	return newInfo("Swimming", s.DurationH, s)
}

func (Swimming) isWorkout() {}
