package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mexus/range-perf/benchmark"
)

// verifyCmd checks that all producers agree before anything is timed.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every range producer sums each bound to the same value",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid configuration")
		}
		checks, err := benchmark.Verify(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Verification failed")
		}
		log.Info().Int("bounds", len(checks)).Msg("All producers agree")
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	addRangeFlags(verifyCmd)
}
