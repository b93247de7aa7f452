package attack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wifiguard/wifiguard/pkg/wifi"
)

func TestAssessOpenAndWEPAreCritical(t *testing.T) {
	for _, enc := range []wifi.Encryption{wifi.EncOpen, wifi.EncWEP} {
		for seed := int64(0); seed < 10; seed++ {
			res := newTestSimulator(seed).Assess(
				wifi.Network{SSID: "AnyNet", Encryption: enc},
				wifi.Router{},
			)
			assert.Equal(t, RiskCritical, res.Overall, "enc %s seed %d", enc, seed)
		}
	}
}

func TestAssessWPA2NeverLow(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		res := newTestSimulator(seed).Assess(
			wifi.Network{SSID: "HomeWiFi", Encryption: wifi.EncWPA2},
			wifi.Router{Vendor: "netgear"},
		)
		assert.Contains(t, []Risk{RiskMedium, RiskHigh}, res.Overall, "seed %d", seed)
	}
}

func TestAssessDictionaryMatchEscalates(t *testing.T) {
	// A visible SSID guarantees dictionary matches, which force HIGH even
	// on otherwise solid encryption.
	res := newTestSimulator(1).Assess(
		wifi.Network{SSID: "HomeWiFi", Encryption: wifi.EncWPA3},
		wifi.Router{},
	)
	require.NotEmpty(t, res.Dictionary.Matches)
	assert.Equal(t, RiskHigh, res.Overall)
	assert.Equal(t, "minutes to hours", res.CrackTime)
}

func TestAssessTotalsAndRate(t *testing.T) {
	res := newTestSimulator(2).Assess(
		wifi.Network{SSID: "HomeWiFi", Encryption: wifi.EncWPA2},
		wifi.Router{Vendor: "netgear"},
	)
	assert.Equal(t, res.Dictionary.Tested+res.Generation.Generated, res.TotalTested)
	assert.GreaterOrEqual(t, res.SuccessRate, res.Generation.SuccessRate)
	assert.LessOrEqual(t, res.SuccessRate, 100)
}

func TestAssessRecommendationsUnique(t *testing.T) {
	networks := []wifi.Network{
		{SSID: "HomeWiFi", Encryption: wifi.EncOpen},
		{SSID: "HomeWiFi", Encryption: wifi.EncWEP},
		{SSID: "HomeWiFi", Encryption: wifi.EncWPA2},
		{Encryption: wifi.EncWPA3},
	}
	for _, n := range networks {
		res := newTestSimulator(4).Assess(n, wifi.Router{Vendor: "netgear"})
		require.NotEmpty(t, res.Recommendations)
		seen := make(map[string]struct{})
		for _, r := range res.Recommendations {
			_, dup := seen[r]
			assert.False(t, dup, "duplicate recommendation %q", r)
			seen[r] = struct{}{}
		}
	}
}

func TestAssessRecommendationOrdering(t *testing.T) {
	res := newTestSimulator(1).Assess(
		wifi.Network{SSID: "HomeWiFi", Encryption: wifi.EncOpen},
		wifi.Router{},
	)
	assert.Equal(t, "Enable WPA2 or WPA3 encryption - the network is open", res.Recommendations[0])
}

func TestAssessDeterministicWithSeed(t *testing.T) {
	network := wifi.Network{SSID: "HomeWiFi", Encryption: wifi.EncWPA2}
	router := wifi.Router{Vendor: "netgear"}

	a := newTestSimulator(1234).Assess(network, router)
	b := newTestSimulator(1234).Assess(network, router)
	assert.Equal(t, a, b)
}

func TestOverallRiskPriorityTable(t *testing.T) {
	tests := []struct {
		name string
		enc  wifi.Encryption
		vuln Risk
		want Risk
	}{
		{"open beats everything", wifi.EncOpen, RiskLow, RiskCritical},
		{"wep beats everything", wifi.EncWEP, RiskLow, RiskCritical},
		{"high vuln beats wpa2", wifi.EncWPA2, RiskHigh, RiskHigh},
		{"wpa is high", wifi.EncWPA, RiskLow, RiskHigh},
		{"medium vuln on wpa3", wifi.EncWPA3, RiskMedium, RiskMedium},
		{"wpa2 floor is medium", wifi.EncWPA2, RiskLow, RiskMedium},
		{"wpa3 clean is low", wifi.EncWPA3, RiskLow, RiskLow},
		{"unknown clean is low", wifi.EncUnknown, RiskLow, RiskLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overallRisk(tt.enc, tt.vuln))
		})
	}
}

func TestCrackTimeEstimate(t *testing.T) {
	assert.Equal(t, "minutes to hours", crackTimeEstimate(wifi.EncWPA3, RiskHigh))
	assert.Equal(t, "hours to days", crackTimeEstimate(wifi.EncWPA3, RiskMedium))
	assert.Equal(t, "immediate (no password required)", crackTimeEstimate(wifi.EncOpen, RiskLow))
	assert.Equal(t, "minutes", crackTimeEstimate(wifi.EncWEP, RiskLow))
	assert.Equal(t, "years to decades", crackTimeEstimate(wifi.EncWPA3, RiskLow))
	assert.Equal(t, "unknown", crackTimeEstimate(wifi.EncUnknown, RiskLow))
}
