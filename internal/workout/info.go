package workout

import "fmt"

// InfoMessage is the computed summary of one workout.
type InfoMessage struct {
	TrainingType string
	DurationH    float64
	Distance     float64
	Speed        float64
	Calories     float64
}

// Message renders the summary as a single line.
func (m InfoMessage) Message() string {
	return fmt.Sprintf("Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType, m.DurationH, m.Distance, m.Speed, m.Calories)
}
