package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	estimatePingRate      time.Duration
	estimateDropThreshold int
)

// estimateCmd prints the worst-case failure-detection latency for a given ping rate and drop threshold, without
// starting a node. The bound is pingRate * (dropThreshold + 1): one tick to notice the first missed ping, and
// dropThreshold further ticks before the successor is declared failed.
var estimateCmd = &cobra.Command{
	Use:          "estimate",
	Short:        "Print the worst-case failure-detection latency for a ping rate and drop threshold.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		latency := estimatePingRate * time.Duration(estimateDropThreshold+1)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", latency)
		return nil
	},
}

func init() {
	estimateCmd.Flags().DurationVar(&estimatePingRate, "ping-rate", 1*time.Second, "Ping rate.")
	estimateCmd.Flags().IntVar(&estimateDropThreshold, "drop-threshold", 3, "Drop threshold.")
}
