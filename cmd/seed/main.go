// Command seed fabricates randomized items for manual testing of the
// CRUD endpoints. It writes through the same backend selection the server
// uses and is not part of the request-serving path.
package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"items-api/config"
	"items-api/storage"
)

func main() {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create dummy items for testing CRUD operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()

			store, _, err := storage.Select(config.Load(), logger)
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			return seed(context.Background(), cmd.OutOrStdout(), store, rng, count)
		},
	}
	cmd.Flags().IntVar(&count, "count", 10, "Number of dummy items to create")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
