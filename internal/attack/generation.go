package attack

import (
	"math"
	"strings"

	"github.com/wifiguard/wifiguard/internal/generate"
	"github.com/wifiguard/wifiguard/pkg/wifi"
)

// generationRate is the assumed candidate-generation throughput per second.
const generationRate = 100000

const maxStrategySamples = 5

func sampleOf(words []string) []string {
	n := len(words)
	if n > maxStrategySamples {
		n = maxStrategySamples
	}
	return words[:n]
}

// GenerationAttack runs the three candidate generators and fabricates
// outcomes using the fixed per-strategy success rates.
func (s *Simulator) GenerationAttack(network wifi.Network, router wifi.Router) GenerationResult {
	combos := generate.WordCombinations(network.SSID, router.Vendor)
	patterns := generate.PatternBased(network.SSID, s.rng)
	hybrids := generate.Hybrid(network.SSID, router.Vendor)

	result := GenerationResult{
		Generated: len(combos) + len(patterns) + len(hybrids),
		Strategies: []StrategySummary{
			{Name: "Word Combinations", Count: len(combos), Samples: sampleOf(combos), SuccessRate: s.cfg.WordComboSuccessRate},
			{Name: "Pattern Based", Count: len(patterns), Samples: sampleOf(patterns), SuccessRate: s.cfg.PatternSuccessRate},
			{Name: "Hybrid", Count: len(hybrids), Samples: sampleOf(hybrids), SuccessRate: s.cfg.HybridSuccessRate},
		},
	}

	for _, st := range result.Strategies {
		if st.SuccessRate > result.SuccessRate {
			result.SuccessRate = st.SuccessRate
		}
	}
	result.EstimatedSeconds = math.Ceil(float64(result.Generated) / generationRate)

	if result.SuccessRate <= s.cfg.CrackThreshold {
		return result
	}

	ssid := strings.ToLower(strings.TrimSpace(network.SSID))
	if ssid == "" {
		ssid = "network"
	}
	ssidGuesses := []string{ssid + "123", ssid + "2024"}
	for i := 0; i < 1+s.rng.Intn(2); i++ {
		result.Cracks = append(result.Cracks, Crack{
			Candidate: Candidate{Value: ssidGuesses[i], Category: CategoryGeneratedPattern, Method: "SSID + Common Pattern"},
			Seconds:   60 + s.rng.Intn(301),
			Attempts:  1000 + s.rng.Intn(10001),
			Risk:      RiskHigh,
			Reason:    "pattern generation reaches SSID-derived guesses quickly",
		})
	}

	if router.Known() {
		vendor := strings.ToLower(strings.TrimSpace(router.Vendor))
		result.Cracks = append(result.Cracks, Crack{
			Candidate: Candidate{Value: vendor + "2024", Category: CategoryGeneratedHybrid, Method: "Vendor + Pattern"},
			Seconds:   120 + s.rng.Intn(601),
			Attempts:  5000 + s.rng.Intn(50001),
			Risk:      RiskHigh,
			Reason:    "vendor name narrows the hybrid search space",
		})
	}

	return result
}
