package naics

import "strings"

// digitalRule matches a service title against keywords and assigns a
// digital-delivery score when any keyword is present.
type digitalRule struct {
	keywords []string
	score    float64
}

// digitalRules are evaluated in order; the first matching rule wins.
// Scores range from 0 (purely physical delivery) to 1 (fully digital).
var digitalRules = []digitalRule{
	{keywords: []string{"software", "computing", "programming", "hosting", "data processing"}, score: 1.0},
	{keywords: []string{"design", "consulting", "research", "engineering"}, score: 0.8},
	{keywords: []string{"banking", "insurance", "placement", "administrative"}, score: 0.7},
	{keywords: []string{"school", "education", "training"}, score: 0.4},
	{keywords: []string{"restaurant", "repair", "salon", "barber", "janitorial", "plumbing"}, score: 0.1},
}

// sectorDigitalDefaults assigns a fallback score by sector when no keyword
// rule matches.
var sectorDigitalDefaults = map[string]float64{
	"22": 0.3,
	"23": 0.1,
	"51": 0.9,
	"52": 0.7,
	"53": 0.5,
	"54": 0.8,
	"56": 0.4,
	"61": 0.4,
	"62": 0.2,
	"72": 0.1,
	"81": 0.1,
}

// DigitalScore estimates how digitally deliverable a service is, on a 0-1
// scale. The first keyword rule matching the title wins; otherwise the
// sector default applies; otherwise 0.5.
func DigitalScore(sectorCode, title string) float64 {
	lower := strings.ToLower(title)
	for _, rule := range digitalRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.score
			}
		}
	}

	if score, ok := sectorDigitalDefaults[sectorCode]; ok {
		return score
	}
	return 0.5
}
