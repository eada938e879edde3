package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/storefront/app/jobs"
	"github.com/shashiranjanraj/storefront/pkg/cache"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/queue"
)

// storefront queue:work — run queue workers in a dedicated process.
// Only useful with the Redis driver, the in-memory queue is not shared
// across processes.
var queueWorkCmd = &cobra.Command{
	Use:   "queue:work",
	Short: "Process background jobs until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		if err := cache.Connect(); err != nil {
			return err
		}

		jobs.RegisterAll()
		queue.UseDB(database.DB)
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		workers, _ := cmd.Flags().GetInt("workers")
		queue.StartWorkers(ctx, workers)

		<-ctx.Done()
		logger.Info("queue: workers stopping")
		return nil
	},
}

func init() {
	queueWorkCmd.Flags().Int("workers", 4, "number of concurrent workers")
}
