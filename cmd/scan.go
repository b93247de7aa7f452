package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wifiguard/wifiguard/internal/config"
	"github.com/wifiguard/wifiguard/internal/report"
	"github.com/wifiguard/wifiguard/internal/scan"
)

func scanCmd(cfg *config.Config) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Print a one-shot simulated network scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			sim := scan.NewSimulator(cfg.Scan, seedOrClock(cfg.Seed))
			networks := sim.Generate(count)

			logger.Info("simulated scan complete", "networks", len(networks))

			fmt.Printf("  %-4s %-22s %-19s %3s %-7s %5s %-4s %s\n",
				"#", "SSID", "BSSID", "CH", "ENC", "PWR", "SIG", "VENDOR")
			for i, n := range networks {
				ssid := n.SSID
				if n.Hidden() {
					ssid = "<hidden>"
				}
				router := scan.RouterFor(n)
				fmt.Printf("  %-4d %-22s %-19s %3d %-7s %5d %s %s\n",
					i+1, ssid, n.BSSID, n.Channel,
					report.EncryptionColor(n.Encryption.String()),
					n.Signal, report.SignalBar(n.Signal), router.Vendor)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "How many discovery rounds to simulate")
	return cmd
}
