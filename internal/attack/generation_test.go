package attack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wifiguard/wifiguard/internal/config"
	"github.com/wifiguard/wifiguard/pkg/wifi"
)

func TestGenerationAttackStrategySummaries(t *testing.T) {
	sim := newTestSimulator(1)
	res := sim.GenerationAttack(
		wifi.Network{SSID: "HomeWiFi", Encryption: wifi.EncWPA2},
		wifi.Router{Vendor: "netgear"},
	)

	require.Len(t, res.Strategies, 3)
	assert.Equal(t, "Word Combinations", res.Strategies[0].Name)
	assert.Equal(t, 15, res.Strategies[0].SuccessRate)
	assert.Equal(t, 25, res.Strategies[1].SuccessRate)
	assert.Equal(t, 35, res.Strategies[2].SuccessRate)

	total := 0
	for _, st := range res.Strategies {
		total += st.Count
		assert.LessOrEqual(t, len(st.Samples), 5)
		assert.Greater(t, st.Count, 0)
	}
	assert.Equal(t, total, res.Generated)
	assert.Equal(t, 35, res.SuccessRate, "max over strategies")
	assert.Equal(t, float64(1), res.EstimatedSeconds, "small sets round up to one second")
}

func TestGenerationAttackFabricatesCracks(t *testing.T) {
	// The hybrid rate (35) exceeds the fabrication threshold (25), so
	// cracks appear for every seed.
	for _, seed := range []int64{1, 5, 77} {
		sim := newTestSimulator(seed)
		res := sim.GenerationAttack(
			wifi.Network{SSID: "HomeWiFi", Encryption: wifi.EncWPA2},
			wifi.Router{Vendor: "netgear"},
		)
		require.NotEmpty(t, res.Cracks, "seed %d", seed)

		var ssidCracks, vendorCracks int
		for _, c := range res.Cracks {
			switch c.Candidate.Method {
			case "SSID + Common Pattern":
				ssidCracks++
				assert.GreaterOrEqual(t, c.Seconds, 60)
				assert.LessOrEqual(t, c.Seconds, 360)
				assert.GreaterOrEqual(t, c.Attempts, 1000)
				assert.LessOrEqual(t, c.Attempts, 11000)
			case "Vendor + Pattern":
				vendorCracks++
				assert.GreaterOrEqual(t, c.Seconds, 120)
				assert.LessOrEqual(t, c.Seconds, 720)
				assert.GreaterOrEqual(t, c.Attempts, 5000)
				assert.LessOrEqual(t, c.Attempts, 55000)
			default:
				t.Errorf("unexpected crack method %q", c.Candidate.Method)
			}
		}
		assert.GreaterOrEqual(t, ssidCracks, 1)
		assert.LessOrEqual(t, ssidCracks, 2)
		assert.Equal(t, 1, vendorCracks, "vendor known produces one vendor crack")
	}
}

func TestGenerationAttackNoVendorNoVendorCrack(t *testing.T) {
	sim := newTestSimulator(1)
	res := sim.GenerationAttack(wifi.Network{SSID: "HomeWiFi"}, wifi.Router{})
	for _, c := range res.Cracks {
		assert.NotEqual(t, "Vendor + Pattern", c.Candidate.Method)
	}
}

func TestGenerationAttackBelowThresholdNoCracks(t *testing.T) {
	cfg := config.DefaultConfig().Simulation
	cfg.WordComboSuccessRate = 5
	cfg.PatternSuccessRate = 10
	cfg.HybridSuccessRate = 20
	sim := NewSimulator(cfg, newTestSimulator(1).rng)

	res := sim.GenerationAttack(wifi.Network{SSID: "HomeWiFi"}, wifi.Router{Vendor: "netgear"})
	assert.Equal(t, 20, res.SuccessRate)
	assert.Empty(t, res.Cracks)
}

func TestGenerationAttackDeterministicWithSeed(t *testing.T) {
	network := wifi.Network{SSID: "HomeWiFi", Encryption: wifi.EncWPA2}
	router := wifi.Router{Vendor: "netgear"}

	a := newTestSimulator(9).GenerationAttack(network, router)
	b := newTestSimulator(9).GenerationAttack(network, router)
	assert.Equal(t, a, b)
}
