package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Seed fixes the simulation randomness. Zero means seed from the clock.
	Seed int64

	Simulation SimulationConfig
	Scan       ScanConfig
	Output     OutputConfig
}

// SimulationConfig holds the design constants driving the simulated attack
// outcomes. They are tunable knobs, not measured probabilities.
type SimulationConfig struct {
	// VendorDefaultProbability is the chance a known vendor's factory
	// default is reported as cracked.
	VendorDefaultProbability float64
	// CommonPasswordProbability is the chance a very common password is
	// reported as cracked.
	CommonPasswordProbability float64

	// Fixed per-strategy success rates, in percent.
	WordComboSuccessRate int
	PatternSuccessRate   int
	HybridSuccessRate    int

	// CrackThreshold is the success-rate percentage above which the
	// generation simulator fabricates successful cracks.
	CrackThreshold int
}

type ScanConfig struct {
	// Interval between simulated network discoveries.
	Interval time.Duration
	// MaxNetworks caps how many networks a simulated scan produces.
	MaxNetworks int
}

type OutputConfig struct {
	ReportFile string
	Verbose    int
	NoColor    bool
}

func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			VendorDefaultProbability:  0.6,
			CommonPasswordProbability: 0.3,
			WordComboSuccessRate:      15,
			PatternSuccessRate:        25,
			HybridSuccessRate:         35,
			CrackThreshold:            25,
		},
		Scan: ScanConfig{
			Interval:    800 * time.Millisecond,
			MaxNetworks: 12,
		},
		Output: OutputConfig{
			Verbose: 1,
		},
	}
}

// Load layers an optional config file and WIFIGUARD_* environment
// variables over the defaults. An empty path means no file is required.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("simulation.vendordefaultprobability", cfg.Simulation.VendorDefaultProbability)
	v.SetDefault("simulation.commonpasswordprobability", cfg.Simulation.CommonPasswordProbability)
	v.SetDefault("simulation.wordcombosuccessrate", cfg.Simulation.WordComboSuccessRate)
	v.SetDefault("simulation.patternsuccessrate", cfg.Simulation.PatternSuccessRate)
	v.SetDefault("simulation.hybridsuccessrate", cfg.Simulation.HybridSuccessRate)
	v.SetDefault("simulation.crackthreshold", cfg.Simulation.CrackThreshold)
	v.SetDefault("scan.interval", cfg.Scan.Interval)
	v.SetDefault("scan.maxnetworks", cfg.Scan.MaxNetworks)
	v.SetDefault("output.reportfile", cfg.Output.ReportFile)
	v.SetDefault("output.verbose", cfg.Output.Verbose)
	v.SetDefault("output.nocolor", cfg.Output.NoColor)

	v.SetEnvPrefix("WIFIGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
