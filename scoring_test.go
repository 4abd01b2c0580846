package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dDay = Question{
	Name: "D-Day",
	Year: 1944,
	Lat:  49.34,
	Long: -0.60,
}

func TestHaversineSymmetricAndZeroAtIdentity(t *testing.T) {
	pairs := [][4]float64{
		{49.34, -0.60, 0, 0},
		{52.5186, 13.3762, 40.7128, -74.0060},
		{-33.9186, 18.4233, 55.7558, 37.6176},
	}

	for _, p := range pairs {
		ab := haversineDistance(p[0], p[1], p[2], p[3])
		ba := haversineDistance(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}

	assert.Zero(t, haversineDistance(49.34, -0.60, 49.34, -0.60))
}

func TestPerfectGuessScoresMax(t *testing.T) {
	score := scoreGuess(dDay, Guess{Lat: 49.34, Long: -0.60, Year: 1944})

	assert.Equal(t, 5000, score.DistanceScore)
	assert.Equal(t, 5000, score.YearScore)
	assert.Equal(t, 10000, score.Total)
}

func TestZeroCoordinateGuessLosesMostDistancePoints(t *testing.T) {
	score := scoreGuess(dDay, Guess{Lat: 0, Long: 0, Year: 1944})

	// Normandy to (0,0) is several thousand kilometers, so the distance
	// component collapses while the year component stays at the cap.
	require.Greater(t, score.DistanceKm, 4000.0)
	assert.Greater(t, score.DistanceScore, 0)
	assert.Less(t, score.DistanceScore, 1500)

	expected := int(math.Round(5000 * math.Exp(-score.DistanceKm/4000)))
	assert.Equal(t, expected, score.DistanceScore)

	assert.Equal(t, 5000, score.YearScore)
	assert.Equal(t, score.DistanceScore+5000, score.Total)
}

func TestScoreComponentsStayInRange(t *testing.T) {
	guesses := []Guess{
		{Lat: 49.34, Long: -0.60, Year: 1944},
		{Lat: 49.0, Long: 0.0, Year: 1945},
		{Lat: 0, Long: 0, Year: 1900},
		{Lat: -89.9, Long: 179.9, Year: 1},
		{Lat: 40.7128, Long: -74.0060, Year: 2024},
	}

	for _, g := range guesses {
		score := scoreGuess(dDay, g)

		assert.Greater(t, score.DistanceScore, 0)
		assert.LessOrEqual(t, score.DistanceScore, 5000)
		assert.Greater(t, score.YearScore, 0)
		assert.LessOrEqual(t, score.YearScore, 5000)
		assert.Equal(t, score.DistanceScore+score.YearScore, score.Total)
	}
}

func TestScoresDecreaseWithError(t *testing.T) {
	near := scoreGuess(dDay, Guess{Lat: 49.0, Long: -0.5, Year: 1944})
	far := scoreGuess(dDay, Guess{Lat: 21.3546, Long: -157.9394, Year: 1944})
	assert.Greater(t, near.DistanceScore, far.DistanceScore)

	offByTwo := scoreGuess(dDay, Guess{Lat: 49.34, Long: -0.60, Year: 1946})
	offByTwenty := scoreGuess(dDay, Guess{Lat: 49.34, Long: -0.60, Year: 1964})
	assert.Greater(t, offByTwo.YearScore, offByTwenty.YearScore)

	// Year cap only at zero error.
	assert.Less(t, offByTwo.YearScore, 5000)
}
