package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/msomdec/yatube/internal/service"
	"github.com/spf13/cobra"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUserCreateCmd(a))
	return cmd
}

func newUserCreateCmd(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv("YATUBE_PASSWORD")
			}
			if password == "" {
				return errors.New("password required: pass --password or set YATUBE_PASSWORD")
			}

			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			auth := service.NewAuthService(db.Users(), a.cfg.JWTSecret, a.cfg.BcryptCost)
			u, err := auth.Register(cmd.Context(), username, password, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %d %q\n", u.ID, u.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&password, "password", "", "password (defaults to $YATUBE_PASSWORD)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}
