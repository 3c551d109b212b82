package admin

import (
	"context"
	"fmt"
	"log"

	"github.com/bluewake-marine/shorebot/internal/config"
	"github.com/bluewake-marine/shorebot/internal/database"
	"github.com/bluewake-marine/shorebot/internal/repository"
	"github.com/bluewake-marine/shorebot/internal/service"
	"github.com/spf13/cobra"
)

// SeedCmd returns the seed command. It performs the same destructive reset
// as POST /bot/init: wipe the knowledge base and load the default records.
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset the knowledge base to the default records",
		Long:  "Delete all knowledge records and reload the built-in seed set. Destructive.",
		RunE:  runSeed,
	}

	cmd.Flags().Bool("no-migrate", false, "Skip automatic database migrations")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, database.DefaultPoolConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	noMigrate, _ := cmd.Flags().GetBool("no-migrate")
	if !noMigrate {
		if err := runMigrations(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	knowledgeRepo := repository.NewKnowledgeRepository(pool)
	txRunner := repository.NewTxRunner(pool)
	botSvc := service.NewBotService(knowledgeRepo, nil, txRunner)

	count, err := botSvc.ResetKnowledge(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed knowledge base: %w", err)
	}

	log.Printf("knowledge base reset: %d records seeded", count)
	return nil
}
