package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/doctorshouse/backend/config"
	"github.com/doctorshouse/backend/internal/store"
)

// NewInitCommand bootstraps the Mongo indexes: a unique index on users.email
// and a unique compound index on the appointment (email, date, time) tuple.
// The server runs without them, but with the indexes in place two racing
// booking requests cannot both insert the same slot.
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize database indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			mgr, err := store.NewManager(ctx, cfg.Mongo)
			if err != nil {
				return fmt.Errorf("failed to connect to mongo: %w", err)
			}
			defer mgr.Close(ctx)

			fmt.Println("Creating indexes...")
			if err := mgr.EnsureIndexes(ctx); err != nil {
				return fmt.Errorf("failed to create indexes: %w", err)
			}
			fmt.Println("Indexes created successfully.")
			return nil
		},
	}

	return cmd
}
