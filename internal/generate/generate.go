// Package generate produces candidate password sets from a network's SSID
// and router vendor. The three strategies share a structural contract:
// deterministic rule shapes, deduplicated output, randomness only inside
// the leet-speak substitution choice.
package generate

import "strings"

// baseVocabulary seeds the word-combination strategy alongside the SSID
// and vendor.
var baseVocabulary = []string{
	"wifi", "home", "network", "internet", "router", "admin", "secure", "password",
}

var numericPatterns = []string{
	"123", "1234", "12345", "123456", "2023", "2024", "01", "001", "111", "000",
}

var specialPatterns = []string{
	"!", "@", "#", "$", "!!", "123!", "@123",
}

var separators = []string{"", "_", "-", "@"}

var pairSuffixes = []string{"", "123", "!"}

// dedup keeps first occurrence order.
func dedup(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// baseWords assembles the deduplicated base-word set for a network.
func baseWords(ssid, vendor string) []string {
	words := make([]string, 0, len(baseVocabulary)+2)
	words = append(words, baseVocabulary...)
	if s := strings.ToLower(strings.TrimSpace(ssid)); s != "" {
		words = append(words, s)
	}
	if v := strings.ToLower(strings.TrimSpace(vendor)); v != "" {
		words = append(words, v)
	}
	return dedup(words)
}

// WordCombinations emits pairwise concatenations of the base-word set with
// separators and suffixes, plus single words decorated with numeric and
// special patterns in both orders.
func WordCombinations(ssid, vendor string) []string {
	words := baseWords(ssid, vendor)
	var out []string

	for _, a := range words {
		for _, b := range words {
			if a == b {
				continue
			}
			for _, sep := range separators {
				for _, suf := range pairSuffixes {
					out = append(out, a+sep+b+suf)
				}
			}
		}
	}

	for _, w := range words {
		for _, n := range numericPatterns {
			out = append(out, w+n, n+w)
		}
		for _, sp := range specialPatterns {
			out = append(out, w+sp, sp+w)
		}
	}

	return dedup(out)
}
