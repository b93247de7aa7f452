// Package report renders assessments and estimates as colorized terminal
// text shared by the CLI and the TUI.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/wifiguard/wifiguard/internal/attack"
	"github.com/wifiguard/wifiguard/internal/estimate"
)

// RiskStyle returns the lipgloss-rendered form of a risk tier.
func RiskStyle(r attack.Risk) string {
	switch r {
	case attack.RiskCritical:
		return riskCriticalStyle.Render(r.String())
	case attack.RiskHigh:
		return riskHighStyle.Render(r.String())
	case attack.RiskMedium:
		return riskMediumStyle.Render(r.String())
	default:
		return riskLowStyle.Render(r.String())
	}
}

// Render draws the full assessment report.
func Render(a attack.Assessment) string {
	var b strings.Builder

	ssid := a.SSID
	if ssid == "" {
		ssid = "<hidden>"
	}

	b.WriteString(titleStyle.Render("Brute-Force Risk Assessment") + "\n\n")
	writeField(&b, "Network", ssid)
	if a.Vendor != "" {
		writeField(&b, "Vendor", a.Vendor)
	}
	writeField(&b, "Encryption", EncryptionColor(a.Encryption))
	writeField(&b, "Overall risk", RiskStyle(a.Overall))
	writeField(&b, "Est. crack time", a.CrackTime)
	writeField(&b, "Passwords tested", humanize.Comma(int64(a.TotalTested)))
	writeField(&b, "Combined success", fmt.Sprintf("%d%%", a.SuccessRate))

	b.WriteString("\n" + sectionStyle.Render("Dictionary attack") + "\n")
	writeField(&b, "Candidates", humanize.Comma(int64(a.Dictionary.Tested)))
	writeField(&b, "Est. duration", fmt.Sprintf("%.0fs", a.Dictionary.EstimatedSeconds))
	writeField(&b, "Succeeded", fmt.Sprintf("%t", a.Dictionary.Succeeded))
	for _, cat := range []attack.Category{attack.CategoryCommonWeak, attack.CategoryRouterDefault, attack.CategorySSID} {
		if n, ok := a.Dictionary.CategoryCounts[cat]; ok {
			writeField(&b, "  "+cat.String(), humanize.Comma(int64(n)))
		}
	}
	writeCracks(&b, a.Dictionary.Matches)

	b.WriteString("\n" + sectionStyle.Render("Generation attack") + "\n")
	writeField(&b, "Generated", humanize.Comma(int64(a.Generation.Generated)))
	writeField(&b, "Success rate", fmt.Sprintf("%d%%", a.Generation.SuccessRate))
	for _, st := range a.Generation.Strategies {
		writeField(&b, "  "+st.Name,
			fmt.Sprintf("%s candidates, %d%%", humanize.Comma(int64(st.Count)), st.SuccessRate))
	}
	writeCracks(&b, a.Generation.Cracks)

	b.WriteString("\n" + sectionStyle.Render("Recommendations") + "\n")
	for i, rec := range a.Recommendations {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, rec))
	}

	return borderStyle.Render(b.String())
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-18s", label+":")), value))
}

func writeCracks(b *strings.Builder, cracks []attack.Crack) {
	if len(cracks) == 0 {
		b.WriteString(dimStyle.Render("  no simulated cracks") + "\n")
		return
	}
	for _, c := range cracks {
		b.WriteString(fmt.Sprintf("  %s %q via %s in %ds (%s attempts) - %s\n",
			RiskStyle(c.Risk), c.Candidate.Value, c.Candidate.Method,
			c.Seconds, humanize.Comma(int64(c.Attempts)), c.Reason))
	}
}

// RenderEstimate draws the legacy closed-form simulation result.
func RenderEstimate(r estimate.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Brute-Force Time Estimate") + "\n\n")
	writeField(&b, "Encryption", EncryptionColor(r.Encryption.String()))
	writeField(&b, "Password length", fmt.Sprintf("%d", r.PasswordLength))
	writeField(&b, "Charset size", fmt.Sprintf("%d", r.CharsetSize))
	writeField(&b, "Combinations", estimate.FormatCombinations(r.Combinations))
	writeField(&b, "Attempts/sec", humanize.Comma(r.AttemptsPerSecond))
	writeField(&b, "Time to exhaust", estimate.FormatSeconds(r.Seconds))
	writeField(&b, "Assessment", r.Feasibility)
	b.WriteString("\n  " + valueStyle.Render(r.ProgressBar) + "\n")

	return borderStyle.Render(b.String())
}
