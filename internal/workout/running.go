package workout

const (
	runningSpeedMultiplier = 18
	runningSpeedShift      = 20
)

// Running is a running session.
type Running struct {
	Action    int
	DurationH float64
	Weight    float64
}

// Distance returns the covered distance in kilometers.
func (r Running) Distance() float64 {
	return distanceKm(r.Action, stepLengthKm)
}

// MeanSpeed returns the average speed in km/h.
func (r Running) MeanSpeed() float64 {
	return meanSpeedKmh(r.Distance(), r.DurationH)
}

// SpentCalories returns the burned kilocalories.
func (r Running) SpentCalories() float64 {
	speed := meanSpeedKmh(r.Distance(), r.DurationH)
	return (runningSpeedMultiplier*speed - runningSpeedShift) * r.Weight / MetersPerKm * r.DurationH * MinutesPerHour
}

// Info assembles the summary for the session.
func (r Running) Info() InfoMessage {
	return newInfo("Running", r.DurationH, r)
}

func (Running) isWorkout() {}
