package generate

import "strings"

// hybridTarget is the fixed length for padded/truncated hybrid candidates.
const hybridTarget = 16

var paddingWords = []string{"Secure", "Access", "Gateway", "Signal"}

// hybridTemplates look high-entropy but follow guessable shapes.
var hybridTemplates = []string{
	"CorrectHorse2024",
	"LetMeIn!Please1",
	"1qaz2wsx3edc4rfv",
	"Qwerty!234567890",
	"MyWiFiIsSecure!1",
}

// padTo pads s with filler (repeated) or truncates it to exactly n bytes.
func padTo(s, filler string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	var b strings.Builder
	b.Grow(n)
	b.WriteString(s)
	for b.Len() < n {
		remaining := n - b.Len()
		if remaining >= len(filler) {
			b.WriteString(filler)
		} else {
			b.WriteString(filler[:remaining])
		}
	}
	return b.String()
}

// Hybrid combines the SSID and vendor with padding words, keyboard walks
// and fixed templates, normalizing rule-defined entries to 16 characters.
func Hybrid(ssid, vendor string) []string {
	base := strings.ToLower(strings.TrimSpace(ssid))
	if base == "" {
		base = "network"
	}
	v := strings.ToLower(strings.TrimSpace(vendor))

	var out []string
	out = append(out, hybridTemplates...)

	for _, pad := range paddingWords {
		out = append(out, padTo(capitalize(base)+pad, pad, hybridTarget))
	}
	for _, walk := range keyboardWalks {
		out = append(out, padTo(base+walk, walk, hybridTarget))
	}
	out = append(out,
		capitalize(base)+"2024!",
		capitalize(base)+"@Home1",
		padTo(capitalize(base)+"Password", "1", hybridTarget),
	)

	if v != "" {
		out = append(out,
			capitalize(v)+"2024!",
			capitalize(v)+"Router1!",
			padTo(capitalize(v)+capitalize(base), "1", hybridTarget),
		)
	}

	return dedup(out)
}
