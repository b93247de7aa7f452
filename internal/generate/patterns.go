package generate

import (
	"math/rand"
	"strings"
)

// maxPatternLen caps every pattern-based candidate.
const maxPatternLen = 16

// leetTable lists the substitutes tried for each letter. Where more than
// one substitute exists, Leet picks one per occurrence at random.
var leetTable = map[rune][]rune{
	'a': {'@', '4'},
	'e': {'3'},
	'i': {'1', '!'},
	'o': {'0'},
	's': {'$', '5'},
	't': {'7'},
	'l': {'1'},
	'g': {'9'},
}

// Leet rewrites word with leet-speak substitutions. The choice between
// alternative substitutes is the only randomness in the generators.
func Leet(word string, rng *rand.Rand) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range strings.ToLower(word) {
		subs, ok := leetTable[r]
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(subs[rng.Intn(len(subs))])
	}
	return b.String()
}

var keyboardWalks = []string{"qwerty", "asdf123", "1qaz2wsx", "zaq12wsx"}

// patternRules build one candidate from a base word. Results longer than
// maxPatternLen are discarded by PatternBased.
var patternRules = []func(word string, rng *rand.Rand) string{
	func(w string, _ *rand.Rand) string { return w + "123!" },
	func(w string, _ *rand.Rand) string { return w + "2024" },
	func(w string, _ *rand.Rand) string { return capitalize(w) + "@123" },
	func(w string, _ *rand.Rand) string { return capitalize(w) + "2024!" },
	func(w string, rng *rand.Rand) string { return Leet(w, rng) },
	func(w string, rng *rand.Rand) string { return Leet(w, rng) + "123" },
	func(w string, rng *rand.Rand) string { return capitalize(Leet(w, rng)) + "!" },
	func(w string, _ *rand.Rand) string { return w + keyboardWalks[0] },
	func(w string, _ *rand.Rand) string { return keyboardWalks[1] + w },
	func(w string, _ *rand.Rand) string { return w + "_" + keyboardWalks[2] },
	func(w string, _ *rand.Rand) string { return w + "!@#" },
	func(w string, _ *rand.Rand) string { return strings.ToUpper(w) + "123" },
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

// PatternBased applies the fixed rule list to the SSID and a small set of
// default words, keeping only results at most 16 characters long.
func PatternBased(ssid string, rng *rand.Rand) []string {
	base := strings.ToLower(strings.TrimSpace(ssid))
	if base == "" {
		base = "network"
	}
	words := dedup([]string{base, "home", "secure", "network", "router"})

	var out []string
	for _, w := range words {
		for _, rule := range patternRules {
			if cand := rule(w, rng); len(cand) <= maxPatternLen {
				out = append(out, cand)
			}
		}
	}
	return dedup(out)
}
