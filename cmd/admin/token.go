package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iliyamo/parts-store-api/internal/config"
	"github.com/iliyamo/parts-store-api/internal/utils"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token [email]",
		Short: "Print a bearer token for an email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadCLI()
			ttl, _ := cmd.Flags().GetInt("ttl")
			if ttl <= 0 {
				ttl = cfg.AccessTTLMin
			}
			tok, err := utils.NewAccessToken(cfg.JWTSecret, args[0], ttl)
			if err != nil {
				return err
			}
			if header, _ := cmd.Flags().GetBool("header"); header {
				fmt.Printf("Authorization: Bearer %s\n", tok.Token)
			} else {
				fmt.Println(tok.Token)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", tok.Exp.Format("2006-01-02T15:04:05Z"))
			return nil
		},
	}
	cmd.Flags().Int("ttl", 0, "Lifetime in minutes (default ACCESS_TOKEN_TTL_MIN)")
	cmd.Flags().Bool("header", false, "Print as an Authorization header")
	return cmd
}
