package command

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	identityrepo "opsboard/backend/internal/identity/repository"
	identityservice "opsboard/backend/internal/identity/service"
	"opsboard/backend/internal/security"
	userdomain "opsboard/backend/internal/user/domain"
	userrepo "opsboard/backend/internal/user/repository"
	userservice "opsboard/backend/internal/user/service"
)

func userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User commands",
	}
	cmd.AddCommand(
		userCreateCommand(),
		userPromoteCommand(),
	)
	return cmd
}

func userCreateCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "create EMAIL",
		Short: "Create user",
		Long: "Creates an account for the provided email. The password may be\n" +
			"provided via stdin or through the interactive prompt.",
		Args: cobra.ExactArgs(1),
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

			passwd, err := prompt("password: ", true)
			if err != nil {
				return err
			}
			if err := checkPassword(passwd); err != nil {
				return err
			}
			creds := identityservice.NewCredentialStore(
				identityrepo.NewPostgresRepository(conn),
				userrepo.NewPostgresRepository(conn),
				security.NewHasher(cfg.BcryptCost),
			)
			u, err := creds.Create(cmd.Context(), identityservice.CreateParams{
				Email:        strings.ToLower(strings.TrimSpace(args[0])),
				Password:     string(passwd),
				Name:         name,
				ActiveModule: userdomain.DefaultModule,
			})
			if err != nil {
				return err
			}

			logger.InfoContext(cmd.Context(), "created user", slog.String("email", u.Email), slog.String("id", u.ID))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	return cmd
}

func userPromoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "promote EMAIL",
		Short: "Grant the superadmin role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (runErr error) {
			_, logger, conn, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := conn.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			users := userservice.NewService(userrepo.NewPostgresRepository(conn))
			if err := users.Promote(cmd.Context(), args[0]); err != nil {
				return err
			}
			logger.InfoContext(cmd.Context(), "user promoted", slog.String("email", args[0]))
			return nil
		},
	}
}

func checkPassword(passwd []byte) error {
	switch {
	case len(passwd) == 0:
		return errors.New("password required")
	case len(passwd) > security.MaxPasswordBytes:
		return errors.New("password must be at most 72 bytes")
	}
	return nil
}
