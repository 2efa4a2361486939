package utils

import (
	"time"

	"github.com/rs/zerolog"
)

// Stats collects population figures across one run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	PeakPopulation       int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.TotalGenerations == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary attaches the collected figures to a log event
func (s *Stats) Summary(e *zerolog.Event) *zerolog.Event {
	return e.
		Int("generations", s.TotalGenerations).
		Int("population", s.Population).
		Int("peak_population", s.PeakPopulation).
		Float64("avg_population", s.AveragePopulation).
		Float64("gen_per_sec", s.GenerationsPerSecond).
		Dur("runtime", time.Since(s.StartTime))
}
