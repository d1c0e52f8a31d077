package command

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	identityrepo "opsboard/backend/internal/identity/repository"
	sessionrepo "opsboard/backend/internal/session/repository"
	sessionservice "opsboard/backend/internal/session/service"
)

func sessionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Session commands",
	}
	cmd.AddCommand(
		sessionsPurgeCommand(),
		sessionsRevokeCommand(),
	)
	return cmd
}

func sessionsPurgeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete expired sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			cfg, logger, conn, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := conn.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			store := sessionservice.NewStore(sessionrepo.NewPostgresRepository(conn), cfg.SessionTTL())
			n, err := store.PurgeExpired(cmd.Context())
			if err != nil {
				return err
			}
			logger.InfoContext(cmd.Context(), "purged expired sessions", slog.Int64("count", n))
			return nil
		},
	}
}

func sessionsRevokeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke EMAIL",
		Short: "Sign a user out everywhere",
		Long:  "Deletes every session of the user. Their next request is rejected as expired.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (runErr error) {
			cfg, logger, conn, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := conn.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			acct, err := identityrepo.NewPostgresRepository(conn).GetByEmail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if acct == nil {
				return fmt.Errorf("no user with email %q", args[0])
			}
			store := sessionservice.NewStore(sessionrepo.NewPostgresRepository(conn), cfg.SessionTTL())
			n, err := store.RevokeUser(cmd.Context(), acct.User.ID)
			if err != nil {
				return err
			}
			logger.InfoContext(cmd.Context(), "revoked sessions", slog.String("email", acct.User.Email), slog.Int64("count", n))
			return nil
		},
	}
}
