package main

import "math"

const (
	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0

	// maxComponentScore is the per-component cap, reached only at zero error.
	maxComponentScore = 5000.0

	// Decay constants: a guess 4000 km off (or 2 years off) loses a factor
	// of e on the respective component.
	distanceDecayKm = 4000.0
	yearDecayYears  = 2.0
)

// haversineDistance returns the great-circle distance in kilometers
// between two points given in decimal degrees.
func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// GuessScore holds the scored components of a single guess.
type GuessScore struct {
	DistanceKm    float64
	YearDiff      int
	DistanceScore int
	YearScore     int
	Total         int
}

// scoreGuess scores a guess against the true answer. Both components decay
// exponentially with their error term, so they stay in (0, 5000] and hit
// 5000 exactly only at zero error.
func scoreGuess(q Question, g Guess) GuessScore {
	distance := haversineDistance(q.Lat, q.Long, g.Lat, g.Long)

	yearDiff := q.Year - g.Year
	if yearDiff < 0 {
		yearDiff = -yearDiff
	}

	distanceScore := int(math.Round(maxComponentScore * math.Exp(-distance/distanceDecayKm)))
	yearScore := int(math.Round(maxComponentScore * math.Exp(-float64(yearDiff)/yearDecayYears)))

	return GuessScore{
		DistanceKm:    distance,
		YearDiff:      yearDiff,
		DistanceScore: distanceScore,
		YearScore:     yearScore,
		Total:         distanceScore + yearScore,
	}
}
