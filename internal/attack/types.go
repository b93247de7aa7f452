// Package attack simulates dictionary and generation attacks against a
// network and classifies the resulting risk. No passwords are actually
// tested; outcomes are fabricated from the candidate sets and a handful of
// tunable probabilities.
package attack

// Category labels where a candidate password came from.
type Category int

const (
	CategorySSID Category = iota
	CategoryRouterDefault
	CategoryCommonWeak
	CategoryGeneratedPattern
	CategoryGeneratedHybrid
	CategoryGeneratedWord
)

func (c Category) String() string {
	switch c {
	case CategorySSID:
		return "ssid-based"
	case CategoryRouterDefault:
		return "router-default"
	case CategoryCommonWeak:
		return "common-weak"
	case CategoryGeneratedPattern:
		return "generated-pattern"
	case CategoryGeneratedHybrid:
		return "generated-hybrid"
	case CategoryGeneratedWord:
		return "generated-word"
	default:
		return "unknown"
	}
}

// Risk is the coarse vulnerability tier.
type Risk int

const (
	RiskLow Risk = iota
	RiskMedium
	RiskHigh
	RiskCritical
)

func (r Risk) String() string {
	switch r {
	case RiskLow:
		return "LOW"
	case RiskMedium:
		return "MEDIUM"
	case RiskHigh:
		return "HIGH"
	case RiskCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

type Candidate struct {
	Value    string   `json:"value"`
	Category Category `json:"category"`
	Method   string   `json:"method,omitempty"`
}

// Crack records a candidate the simulator deems found.
// Seconds >= 0 and Attempts >= 1 always hold.
type Crack struct {
	Candidate Candidate `json:"candidate"`
	Seconds   int       `json:"cracked_in_seconds"`
	Attempts  int       `json:"attempts"`
	Risk      Risk      `json:"risk"`
	Reason    string    `json:"reason"`
}

type DictionaryResult struct {
	Tested           int              `json:"tested_password_count"`
	Matches          []Crack          `json:"potential_matches"`
	CategoryCounts   map[Category]int `json:"category_counts"`
	EstimatedSeconds float64          `json:"estimated_total_seconds"`
	Succeeded        bool             `json:"attack_succeeded"`
}

// StrategySummary describes one generator's contribution.
type StrategySummary struct {
	Name        string   `json:"name"`
	Count       int      `json:"count"`
	Samples     []string `json:"sample_candidates"` // at most 5
	SuccessRate int      `json:"success_rate_percent"`
}

type GenerationResult struct {
	Generated        int               `json:"generated_count"`
	Strategies       []StrategySummary `json:"strategy_summaries"`
	SuccessRate      int               `json:"estimated_success_rate_percent"`
	EstimatedSeconds float64           `json:"estimated_generation_seconds"`
	Cracks           []Crack           `json:"successful_cracks"`
}

// Assessment is the combined verdict for one network. Constructed fresh
// per call, never mutated afterwards.
type Assessment struct {
	SSID            string           `json:"ssid"`
	Vendor          string           `json:"vendor,omitempty"`
	Encryption      string           `json:"encryption"`
	Dictionary      DictionaryResult `json:"dictionary"`
	Generation      GenerationResult `json:"generation"`
	TotalTested     int              `json:"total_passwords_tested"`
	SuccessRate     int              `json:"combined_success_rate_percent"`
	Overall         Risk             `json:"overall_risk_level"`
	CrackTime       string           `json:"estimated_crack_time"`
	Recommendations []string         `json:"recommendations"`
}
