package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliyamo/parts-store-api/internal/config"
	"github.com/iliyamo/parts-store-api/internal/database"
	"github.com/iliyamo/parts-store-api/internal/repository"
)

func promoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promote [email]",
		Short: "Grant the admin role to an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadCLI()
			if cfg.MongoURI == "" {
				return errors.New("MONGO_URI is not set")
			}
			timeout, _ := cmd.Flags().GetDuration("timeout")
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			db, err := database.Open(ctx, cfg.MongoURI, cfg.MongoDB)
			if err != nil {
				return err
			}
			defer db.Close(context.Background())

			res, err := repository.NewUserRepo(db).SetAdmin(ctx, args[0])
			if err != nil {
				return fmt.Errorf("promote %s: %w", args[0], err)
			}
			if res.MatchedCount == 0 {
				return fmt.Errorf("no account with email %s (the user must log in once first)", args[0])
			}
			if res.ModifiedCount == 0 {
				fmt.Printf("%s is already an admin\n", args[0])
				return nil
			}
			fmt.Printf("%s is now an admin\n", args[0])
			return nil
		},
	}
	cmd.Flags().Duration("timeout", 10*time.Second, "Store timeout")
	return cmd
}
