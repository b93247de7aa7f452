package report

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wifiguard/wifiguard/internal/attack"
	"github.com/wifiguard/wifiguard/internal/config"
	"github.com/wifiguard/wifiguard/internal/estimate"
	"github.com/wifiguard/wifiguard/pkg/wifi"
)

func testAssessment(t *testing.T) attack.Assessment {
	t.Helper()
	sim := attack.NewSimulator(config.DefaultConfig().Simulation, rand.New(rand.NewSource(1)))
	return sim.Assess(
		wifi.Network{SSID: "HomeWiFi", Encryption: wifi.EncWPA2},
		wifi.Router{Vendor: "netgear"},
	)
}

func TestRenderAssessment(t *testing.T) {
	out := Render(testAssessment(t))
	assert.Contains(t, out, "Brute-Force Risk Assessment")
	assert.Contains(t, out, "HomeWiFi")
	assert.Contains(t, out, "netgear")
	assert.Contains(t, out, "Recommendations")
	assert.Contains(t, out, "Dictionary attack")
	assert.Contains(t, out, "Generation attack")
}

func TestRenderHiddenNetwork(t *testing.T) {
	sim := attack.NewSimulator(config.DefaultConfig().Simulation, rand.New(rand.NewSource(2)))
	a := sim.Assess(wifi.Network{Encryption: wifi.EncWPA3}, wifi.Router{})
	assert.Contains(t, Render(a), "<hidden>")
}

func TestRenderEstimate(t *testing.T) {
	r := estimate.BruteForce(wifi.EncWPA2, estimate.Options{PasswordLength: 8, Complexity: "high"})
	out := RenderEstimate(r)
	assert.Contains(t, out, "Brute-Force Time Estimate")
	assert.Contains(t, out, "95")
	assert.Contains(t, out, "%")
}

func TestSignalBar(t *testing.T) {
	assert.NotEmpty(t, SignalBar(-40))
	assert.NotEmpty(t, SignalBar(-90))
}
