package workout

const (
	walkingWeightMultiplier = 0.035
	walkingSpeedMultiplier  = 0.029
)

// SportsWalking is a sports walking session.
type SportsWalking struct {
	Action    int
	DurationH float64
	Weight    float64
	Height    float64
}

// Distance returns the covered distance in kilometers.
func (s SportsWalking) Distance() float64 {
	return distanceKm(s.Action, stepLengthKm)
}

// MeanSpeed returns the average speed in km/h.
func (s SportsWalking) MeanSpeed() float64 {
	return meanSpeedKmh(s.Distance(), s.DurationH)
}

// SpentCalories returns the burned kilocalories. The speed-to-height ratio is
// floor divided, so it only contributes once speed squared reaches the height.
func (s SportsWalking) SpentCalories() float64 {
	speed := meanSpeedKmh(s.Distance(), s.DurationH)
	ratio := floorDiv(speed*speed, s.Height)
	return (walkingWeightMultiplier*s.Weight + ratio*walkingSpeedMultiplier*s.Weight) * s.DurationH * MinutesPerHour
}

// Info assembles the summary for the session.
func (s SportsWalking) Info() InfoMessage {
	return newInfo("SportsWalking", s.DurationH, s)
}

func (SportsWalking) isWorkout() {}
