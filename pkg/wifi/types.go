package wifi

import (
	"fmt"
	"strings"
)

type Encryption int

const (
	EncUnknown Encryption = iota
	EncOpen
	EncWEP
	EncWPA
	EncWPA2
	EncWPA3
)

func (e Encryption) String() string {
	switch e {
	case EncOpen:
		return "Open"
	case EncWEP:
		return "WEP"
	case EncWPA:
		return "WPA"
	case EncWPA2:
		return "WPA2"
	case EncWPA3:
		return "WPA3"
	default:
		return "Unknown"
	}
}

// ParseEncryption maps free-form encryption strings from platform adapters
// to an Encryption value. Unrecognized input degrades to EncUnknown rather
// than erroring; adapter output is untrusted.
func ParseEncryption(s string) Encryption {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "OPEN", "NONE", "OPN":
		// Scanners report open networks with an empty security field.
		return EncOpen
	case "WEP":
		return EncWEP
	case "WPA", "WPA1":
		return EncWPA
	case "WPA2", "WPA2-PSK", "RSN":
		return EncWPA2
	case "WPA3", "WPA3-SAE", "SAE":
		return EncWPA3
	default:
		return EncUnknown
	}
}

// Network describes a single observed network. SSID may be empty for a
// hidden network. Values are immutable inputs to the estimators.
type Network struct {
	SSID       string
	BSSID      string
	Encryption Encryption
	Channel    int
	Signal     int // dBm, negative
}

func (n Network) Hidden() bool {
	return n.SSID == ""
}

func (n Network) String() string {
	ssid := n.SSID
	if ssid == "" {
		ssid = "<hidden>"
	}
	return fmt.Sprintf("%s [%s] Ch:%d %s %ddBm", ssid, n.BSSID, n.Channel, n.Encryption, n.Signal)
}

// Router carries what little is known about the access point hardware.
// Vendor is free-form; an empty vendor means unknown.
type Router struct {
	Vendor string
}

func (r Router) Known() bool {
	return r.Vendor != ""
}
