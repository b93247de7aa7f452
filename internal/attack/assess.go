package attack

import "github.com/wifiguard/wifiguard/pkg/wifi"

// baselineSuccessRate applies when the dictionary attack found nothing.
const (
	dictionarySuccessRate = 90
	dictionaryFailRate    = 20
)

// generalRecommendations always trail the rule-triggered ones.
var generalRecommendations = []string{
	"Use a random passphrase of at least 16 characters",
	"Avoid the network name, vendor name or dictionary words in the password",
	"Disable WPS on the access point",
	"Rotate the WiFi password periodically",
}

// Assess merges the dictionary and generation simulations into an overall
// risk verdict for the network.
func (s *Simulator) Assess(network wifi.Network, router wifi.Router) Assessment {
	dict := s.DictionaryAttack(network, router)
	gen := s.GenerationAttack(network, router)

	combined := dictionaryFailRate
	if dict.Succeeded {
		combined = dictionarySuccessRate
	}
	if gen.SuccessRate > combined {
		combined = gen.SuccessRate
	}

	vuln := RiskLow
	switch {
	case len(dict.Matches) > 0:
		vuln = RiskHigh
	case gen.SuccessRate > 30:
		vuln = RiskMedium
	}

	return Assessment{
		SSID:            network.SSID,
		Vendor:          router.Vendor,
		Encryption:      network.Encryption.String(),
		Dictionary:      dict,
		Generation:      gen,
		TotalTested:     dict.Tested + gen.Generated,
		SuccessRate:     combined,
		Overall:         overallRisk(network.Encryption, vuln),
		CrackTime:       crackTimeEstimate(network.Encryption, vuln),
		Recommendations: recommendations(network.Encryption, vuln, router),
	}
}

// overallRisk applies the priority table: open and WEP networks are
// critical regardless of password quality.
func overallRisk(enc wifi.Encryption, vuln Risk) Risk {
	switch {
	case enc == wifi.EncOpen:
		return RiskCritical
	case enc == wifi.EncWEP:
		return RiskCritical
	case vuln == RiskHigh:
		return RiskHigh
	case enc == wifi.EncWPA:
		return RiskHigh
	case vuln == RiskMedium:
		return RiskMedium
	case enc == wifi.EncWPA2:
		return RiskMedium
	default:
		return RiskLow
	}
}

func crackTimeEstimate(enc wifi.Encryption, vuln Risk) string {
	switch vuln {
	case RiskHigh:
		return "minutes to hours"
	case RiskMedium:
		return "hours to days"
	}
	switch enc {
	case wifi.EncOpen:
		return "immediate (no password required)"
	case wifi.EncWEP:
		return "minutes"
	case wifi.EncWPA:
		return "hours to days"
	case wifi.EncWPA2:
		return "days to months"
	case wifi.EncWPA3:
		return "years to decades"
	default:
		return "unknown"
	}
}

func recommendations(enc wifi.Encryption, vuln Risk, router wifi.Router) []string {
	var recs []string
	switch enc {
	case wifi.EncOpen:
		recs = append(recs, "Enable WPA2 or WPA3 encryption - the network is open")
	case wifi.EncWEP:
		recs = append(recs, "Upgrade encryption immediately - WEP is broken")
	case wifi.EncWPA:
		recs = append(recs, "Upgrade from WPA to WPA2 or WPA3")
	}

	switch vuln {
	case RiskHigh:
		recs = append(recs, "Change the password now - it is derivable from public information")
	case RiskMedium:
		recs = append(recs, "Choose a longer password resistant to pattern-based guessing")
	}

	if router.Known() {
		recs = append(recs, "Replace any factory default credentials")
	}

	recs = append(recs, generalRecommendations...)

	seen := make(map[string]struct{}, len(recs))
	out := recs[:0]
	for _, r := range recs {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
