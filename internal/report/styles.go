package report

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen   = lipgloss.Color("#00B894")
	colorRed     = lipgloss.Color("#D63031")
	colorYellow  = lipgloss.Color("#FDCB6E")
	colorOrange  = lipgloss.Color("#E17055")
	colorCyan    = lipgloss.Color("#00CEC9")
	colorGray    = lipgloss.Color("#636E72")
	colorDimGray = lipgloss.Color("#2D3436")
	colorWhite   = lipgloss.Color("#DFE6E9")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	riskLowStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	riskMediumStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	riskHighStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorOrange)
	riskCriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(colorRed)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)
)

// EncryptionColor tints an encryption name by how worried the user
// should be about it.
func EncryptionColor(enc string) string {
	switch enc {
	case "WPA3", "WPA2":
		return riskLowStyle.Render(enc)
	case "WPA":
		return riskMediumStyle.Render(enc)
	case "WEP":
		return riskCriticalStyle.Render(enc)
	case "Open":
		return riskCriticalStyle.Render(enc)
	default:
		return enc
	}
}

// SignalBar renders a four-cell signal strength indicator for a dBm level.
func SignalBar(dbm int) string {
	bars := 0
	switch {
	case dbm >= -50:
		bars = 4
	case dbm >= -60:
		bars = 3
	case dbm >= -70:
		bars = 2
	case dbm >= -80:
		bars = 1
	}

	out := ""
	for i := 0; i < 4; i++ {
		if i < bars {
			out += lipgloss.NewStyle().Foreground(colorGreen).Render("█")
		} else {
			out += lipgloss.NewStyle().Foreground(colorDimGray).Render("░")
		}
	}
	return out
}
