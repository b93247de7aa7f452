package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wifiguard/wifiguard/internal/config"
	"github.com/wifiguard/wifiguard/internal/generate"
)

func wordlistCmd(cfg *config.Config) *cobra.Command {
	var (
		ssid     string
		vendor   string
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Dump the candidate passwords a generator would try",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := seedOrClock(cfg.Seed)

			var words []string
			switch strategy {
			case "combo":
				words = generate.WordCombinations(ssid, vendor)
			case "pattern":
				words = generate.PatternBased(ssid, rng)
			case "hybrid":
				words = generate.Hybrid(ssid, vendor)
			case "all":
				words = append(words, generate.WordCombinations(ssid, vendor)...)
				words = append(words, generate.PatternBased(ssid, rng)...)
				words = append(words, generate.Hybrid(ssid, vendor)...)
			default:
				return fmt.Errorf("unknown strategy %q (want combo, pattern, hybrid or all)", strategy)
			}

			for _, w := range words {
				fmt.Println(w)
			}
			logger.Info("candidates generated", "strategy", strategy, "count", len(words))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&ssid, "ssid", "", "Target SSID")
	f.StringVar(&vendor, "vendor", "", "Router vendor, if known")
	f.StringVar(&strategy, "strategy", "all", "Generator: combo, pattern, hybrid or all")

	return cmd
}
