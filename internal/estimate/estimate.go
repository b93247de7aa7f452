// Package estimate is the legacy closed-form brute-force calculator. It
// predates the dictionary/generation simulators, uses its own attempt-rate
// table, and is kept as an independent code path.
package estimate

import (
	"math/big"
	"strings"

	"github.com/wifiguard/wifiguard/pkg/wifi"
)

const (
	// DefaultPasswordLength applies when the caller passes a non-positive
	// length.
	DefaultPasswordLength = 8
	// defaultCharset is the no-symbol fallback for unrecognized tiers.
	defaultCharset = 26

	barWidth         = 30
	maxElapsedWindow = 3600 // seconds of simulated attack time
)

// Options shapes a closed-form simulation. Zero values select the
// documented defaults (length 8, lowercase-only charset, one-hour window).
type Options struct {
	PasswordLength int
	Complexity     string // "low", "medium" or "high"
	TimeLimit      int    // seconds, capped at one hour
}

type Result struct {
	Encryption        wifi.Encryption
	PasswordLength    int
	Complexity        string
	CharsetSize       int
	Combinations      *big.Float
	AttemptsPerSecond int64
	Seconds           *big.Float
	Feasibility       string
	Percent           float64
	ProgressBar       string
}

func charsetSize(complexity string) int {
	switch strings.ToLower(strings.TrimSpace(complexity)) {
	case "low":
		return 36
	case "medium":
		return 62
	case "high":
		return 95
	default:
		return defaultCharset
	}
}

// attemptRate is this calculator's own table; it intentionally disagrees
// with the dictionary simulator's speeds.
func attemptRate(enc wifi.Encryption) int64 {
	switch enc {
	case wifi.EncWPA3:
		return 100
	case wifi.EncWPA2:
		return 20000
	case wifi.EncWPA:
		return 50000
	case wifi.EncWEP:
		return 1000000
	default:
		return 10000
	}
}

// feasibility buckets seconds-to-exhaust into seven fixed tiers.
func feasibility(seconds *big.Float) string {
	thresholds := []struct {
		limit float64
		label string
	}{
		{3600, "CRITICAL - crackable within an hour"},
		{86400, "VERY WEAK - crackable within a day"},
		{604800, "WEAK - crackable within a week"},
		{2592000, "MODERATE - crackable within a month"},
		{31536000, "FAIR - crackable within a year"},
		{315360000, "STRONG - would take up to a decade"},
	}
	for _, t := range thresholds {
		if seconds.Cmp(big.NewFloat(t.limit)) < 0 {
			return t.label
		}
	}
	return "VERY STRONG - effectively uncrackable by exhaustion"
}

// BruteForce computes the exhaustive-search cost for a password space.
// Combinations are exact big integers lifted to big floats, so large
// lengths never overflow or wrap.
func BruteForce(enc wifi.Encryption, opts Options) Result {
	length := opts.PasswordLength
	if length < 1 {
		length = DefaultPasswordLength
	}
	charset := charsetSize(opts.Complexity)

	combos := new(big.Int).Exp(big.NewInt(int64(charset)), big.NewInt(int64(length)), nil)
	combinations := new(big.Float).SetInt(combos)

	rate := attemptRate(enc)
	seconds := new(big.Float).Quo(combinations, big.NewFloat(float64(rate)))

	limit := opts.TimeLimit
	if limit <= 0 || limit > maxElapsedWindow {
		limit = maxElapsedWindow
	}
	percent := progressPercent(seconds, limit)

	return Result{
		Encryption:        enc,
		PasswordLength:    length,
		Complexity:        strings.ToLower(strings.TrimSpace(opts.Complexity)),
		CharsetSize:       charset,
		Combinations:      combinations,
		AttemptsPerSecond: rate,
		Seconds:           seconds,
		Feasibility:       feasibility(seconds),
		Percent:           percent,
		ProgressBar:       renderBar(percent),
	}
}

// progressPercent is how far an attack gets within the elapsed window,
// capped at 100.
func progressPercent(seconds *big.Float, elapsed int) float64 {
	if seconds.Sign() == 0 {
		return 100
	}
	frac := new(big.Float).Quo(big.NewFloat(float64(elapsed)), seconds)
	pct, _ := new(big.Float).Mul(frac, big.NewFloat(100)).Float64()
	if pct > 100 {
		return 100
	}
	return pct
}
