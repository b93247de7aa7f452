package wifi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEncryption(t *testing.T) {
	tests := []struct {
		in   string
		want Encryption
	}{
		{"WPA2", EncWPA2},
		{"wpa2-psk", EncWPA2},
		{"WPA3", EncWPA3},
		{"sae", EncWPA3},
		{"WPA", EncWPA},
		{"WEP", EncWEP},
		{"Open", EncOpen},
		{"none", EncOpen},
		{"  wep  ", EncWEP},
		{"garbage", EncUnknown},
		{"", EncOpen},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEncryption(tt.in))
		})
	}
}

func TestEncryptionString(t *testing.T) {
	assert.Equal(t, "WPA2", EncWPA2.String())
	assert.Equal(t, "Open", EncOpen.String())
	assert.Equal(t, "Unknown", EncUnknown.String())
}

func TestNetworkHidden(t *testing.T) {
	assert.True(t, Network{}.Hidden())
	assert.False(t, Network{SSID: "HomeWiFi"}.Hidden())
	assert.Contains(t, Network{}.String(), "<hidden>")
}

func TestRouterKnown(t *testing.T) {
	assert.False(t, Router{}.Known())
	assert.True(t, Router{Vendor: "netgear"}.Known())
}
