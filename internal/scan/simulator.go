// Package scan fabricates network discovery. Nothing touches the radio:
// plausible networks are drawn from static SSID patterns and emitted
// incrementally so the UI behaves like a live scan.
package scan

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wifiguard/wifiguard/internal/config"
	"github.com/wifiguard/wifiguard/pkg/wifi"
)

// ssidTemplate pairs an SSID shape with the vendor it implies.
type ssidTemplate struct {
	format  string
	vendor  string
	numeric bool
}

var ssidTemplates = []ssidTemplate{
	{"NETGEAR%02d", "netgear", true},
	{"Linksys%05d", "linksys", true},
	{"TP-Link_%04X", "tp-link", true},
	{"dlink-%04d", "d-link", true},
	{"ASUS_%02d", "asus", true},
	{"HUAWEI-%04X", "huawei", true},
	{"HomeWiFi", "", false},
	{"MyNetwork", "", false},
	{"xfinitywifi", "", false},
	{"CoffeeShop_Guest", "", false},
	{"Office_5G", "", false},
	{"", "", false}, // hidden
}

// encryption mix weighted toward WPA2, the common case.
var encryptionMix = []struct {
	enc    wifi.Encryption
	weight int
}{
	{wifi.EncWPA2, 60},
	{wifi.EncWPA3, 15},
	{wifi.EncWPA, 10},
	{wifi.EncOpen, 8},
	{wifi.EncWEP, 7},
}

// Simulator emits fabricated networks over time behind a scanner-shaped
// API: Start/Stop plus a sorted snapshot accessor.
type Simulator struct {
	cfg config.ScanConfig
	rng *rand.Rand

	mu       sync.RWMutex
	networks []wifi.Network
	seen     map[string]struct{}

	onDiscover func(wifi.Network)
	done       chan struct{}
}

func NewSimulator(cfg config.ScanConfig, rng *rand.Rand) *Simulator {
	return &Simulator{
		cfg:  cfg,
		rng:  rng,
		seen: make(map[string]struct{}),
		done: make(chan struct{}),
	}
}

// OnDiscover sets a callback invoked for each new network.
func (s *Simulator) OnDiscover(fn func(wifi.Network)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDiscover = fn
}

// Start begins emitting networks until MaxNetworks is reached, the context
// ends, or Stop is called.
func (s *Simulator) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.done:
				return
			case <-ticker.C:
				if s.Count() >= s.cfg.MaxNetworks {
					return
				}
				s.discover()
			}
		}
	}()
	return nil
}

func (s *Simulator) Stop() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

// Generate produces n networks at once for one-shot (non-TUI) scans.
func (s *Simulator) Generate(n int) []wifi.Network {
	for i := 0; i < n; i++ {
		s.discover()
	}
	return s.Networks()
}

func (s *Simulator) discover() {
	s.mu.Lock()
	defer s.mu.Unlock()

	net := s.randomNetwork()
	if _, dup := s.seen[net.BSSID]; dup {
		return
	}
	s.seen[net.BSSID] = struct{}{}
	s.networks = append(s.networks, net)

	if s.onDiscover != nil {
		go s.onDiscover(net)
	}
}

func (s *Simulator) randomNetwork() wifi.Network {
	tmpl := ssidTemplates[s.rng.Intn(len(ssidTemplates))]
	ssid := tmpl.format
	if tmpl.numeric {
		ssid = fmt.Sprintf(tmpl.format, s.rng.Intn(0x10000))
	}

	channels := []int{1, 6, 11, 36, 40, 44, 149, 157}
	return wifi.Network{
		SSID:       ssid,
		BSSID:      s.randomBSSID(),
		Encryption: s.randomEncryption(),
		Channel:    channels[s.rng.Intn(len(channels))],
		Signal:     -30 - s.rng.Intn(61), // -30..-90 dBm
	}
}

func (s *Simulator) randomBSSID() string {
	b := make([]byte, 6)
	s.rng.Read(b)
	b[0] &= 0xfe // keep unicast
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", b[0], b[1], b[2], b[3], b[4], b[5])
}

func (s *Simulator) randomEncryption() wifi.Encryption {
	total := 0
	for _, e := range encryptionMix {
		total += e.weight
	}
	roll := s.rng.Intn(total)
	for _, e := range encryptionMix {
		if roll < e.weight {
			return e.enc
		}
		roll -= e.weight
	}
	return wifi.EncWPA2
}

// Networks returns a snapshot sorted by signal strength, strongest first.
func (s *Simulator) Networks() []wifi.Network {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]wifi.Network, len(s.networks))
	copy(out, s.networks)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Signal > out[j].Signal
	})
	return out
}

func (s *Simulator) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.networks)
}

// RouterFor infers the router vendor from the SSID shape of a simulated
// network. Unknown shapes yield an unknown router.
func RouterFor(n wifi.Network) wifi.Router {
	for _, tmpl := range ssidTemplates {
		if tmpl.vendor == "" {
			continue
		}
		prefix := tmpl.format
		if i := strings.IndexByte(prefix, '%'); i >= 0 {
			prefix = prefix[:i]
		}
		if prefix != "" && strings.HasPrefix(n.SSID, prefix) {
			return wifi.Router{Vendor: tmpl.vendor}
		}
	}
	return wifi.Router{}
}
