package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wifiguard/wifiguard/internal/config"
	"github.com/wifiguard/wifiguard/internal/estimate"
	"github.com/wifiguard/wifiguard/internal/report"
	"github.com/wifiguard/wifiguard/pkg/wifi"
)

func estimateCmd(cfg *config.Config) *cobra.Command {
	var (
		encryption string
		length     int
		complexity string
		timeLimit  int
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Closed-form brute-force time estimate (legacy calculator)",
		Long: "Estimates exhaustive-search time from password length and charset size.\n" +
			"Independent of the dictionary simulator and uses its own attempt-rate table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if length < 1 {
				logger.Warn("password length must be positive, using default",
					"given", length, "default", estimate.DefaultPasswordLength)
			}
			result := estimate.BruteForce(wifi.ParseEncryption(encryption), estimate.Options{
				PasswordLength: length,
				Complexity:     complexity,
				TimeLimit:      timeLimit,
			})
			fmt.Println(report.RenderEstimate(result))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&encryption, "encryption", "WPA2", "Encryption type (Open/WEP/WPA/WPA2/WPA3)")
	f.IntVarP(&length, "length", "l", estimate.DefaultPasswordLength, "Password length")
	f.StringVar(&complexity, "complexity", "medium", "Charset tier: low, medium or high")
	f.IntVar(&timeLimit, "time-limit", 3600, "Simulated attack window in seconds (max 3600)")

	return cmd
}
