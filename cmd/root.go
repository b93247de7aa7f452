package cmd

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wifiguard/wifiguard/internal/attack"
	"github.com/wifiguard/wifiguard/internal/config"
	"github.com/wifiguard/wifiguard/internal/scan"
	"github.com/wifiguard/wifiguard/ui"
)

const banner = `
           _  __  _                           _
  __ __ __(_)/ _|(_) __ _  _  _  __ _  _ _  | |
  \ V  V /| |  _|| |/ _' || || |/ _' || '_|/ _' |
   \_/\_/ |_||_| |_|\__, | \_,_|\__,_||_|  \__,_|
                    |___/
`

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Level: log.InfoLevel,
})

// seedOrClock turns the configured seed into a private rand source.
func seedOrClock(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func Execute(version string) error {
	var cfgFile string
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wifiguard",
		Short: "Educational WiFi password-risk simulator",
		Long: banner + "\n  wifiguard v" + version + " - simulated WiFi brute-force risk assessment\n" +
			"  All scan and attack results are fabricated; nothing touches a real network.\n",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			// Flags set on the command line win over file/env values.
			if cmd.Flags().Changed("seed") {
				loaded.Seed = cfg.Seed
			}
			if cmd.Flags().Changed("verbose") {
				loaded.Output.Verbose = cfg.Output.Verbose
			}
			*cfg = *loaded
			if cfg.Output.Verbose > 1 {
				logger.SetLevel(log.DebugLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Path to config file")
	pf.Int64Var(&cfg.Seed, "seed", 0, "Fixed random seed (0 = from clock)")
	pf.IntVarP(&cfg.Output.Verbose, "verbose", "v", 1, "Verbosity level (0-2)")

	rootCmd.AddCommand(assessCmd(cfg))
	rootCmd.AddCommand(estimateCmd(cfg))
	rootCmd.AddCommand(scanCmd(cfg))
	rootCmd.AddCommand(wordlistCmd(cfg))

	return rootCmd.Execute()
}

func runTUI(cfg *config.Config) error {
	rng := seedOrClock(cfg.Seed)
	scanner := scan.NewSimulator(cfg.Scan, rng)
	simulator := attack.NewSimulator(cfg.Simulation, seedOrClock(cfg.Seed+1))

	logger.Info("starting simulated scan", "max", cfg.Scan.MaxNetworks)
	app := ui.NewApp(cfg, scanner, simulator)
	return ui.Run(app)
}
