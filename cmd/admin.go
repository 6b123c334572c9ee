package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/adapters/render/botlist"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/application"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
)

func newAdminCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Super-admin views over all bots and users",
	}

	cmd.AddCommand(newAdminBotsCmd(app), newAdminUsersCmd(app))

	return cmd
}

func newAdminBotsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bots",
		Short: "Manage all bots in the system",
	}

	cmd.AddCommand(newAdminBotsListCmd(app), newAdminBotsDeleteCmd(app))

	return cmd
}

func newAdminBotsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every bot with owner and message count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !guardView(cmd, app, domain.RoleSuperAdmin) {
				return nil
			}

			controller := application.NewBotsController(app.client, app.logger)
			defer controller.Close()

			if err := controller.ListAll(cmd.Context()); err != nil {
				return adminRunError(err)
			}

			rendered := botlist.Render(controller.Bots(), botlist.RenderOptions{
				Title:     "All Bots",
				ShowOwner: true,
				Now:       app.clock.Now(),
			})
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

func newAdminBotsDeleteCmd(app *app) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete <botId>",
		Short: "Delete a bot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !guardView(cmd, app, domain.RoleSuperAdmin) {
				return nil
			}

			controller := application.NewBotsController(app.client, app.logger)
			defer controller.Close()

			id := domain.BotID(args[0])
			err := controller.Delete(cmd.Context(), id, confirmPrompt(cmd, fmt.Sprintf("Delete bot %s?", id), assumeYes))
			if errors.Is(err, domain.ErrNotConfirmed) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			if err != nil {
				// Removed locally regardless; report the server's answer.
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Delete call failed; the bot may still exist server-side.")
				return adminRunError(err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted bot %s\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&assumeYes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func newAdminUsersCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	cmd.AddCommand(newAdminUsersListCmd(app), newAdminUsersDeleteCmd(app))

	return cmd
}

func newAdminUsersListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !guardView(cmd, app, domain.RoleSuperAdmin) {
				return nil
			}

			controller := application.NewUsersController(app.client, app.logger)
			defer controller.Close()

			if err := controller.List(cmd.Context()); err != nil {
				return adminRunError(err)
			}

			out := cmd.OutOrStdout()
			users := controller.Users()
			_, _ = fmt.Fprintf(out, "users: %d\n", len(users))
			for _, user := range users {
				_, _ = fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", user.ID, user.Email, user.Role, user.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func newAdminUsersDeleteCmd(app *app) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete <userId>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !guardView(cmd, app, domain.RoleSuperAdmin) {
				return nil
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			controller := application.NewUsersController(app.client, app.logger)
			defer controller.Close()

			// Load first so the super_admin refusal can see roles.
			if err := controller.List(cmd.Context()); err != nil {
				return adminRunError(err)
			}

			err = controller.Delete(cmd.Context(), domain.UserID(id), confirmPrompt(cmd, fmt.Sprintf("Are you sure you want to delete user %d?", id), assumeYes))
			if errors.Is(err, domain.ErrNotConfirmed) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			if err != nil {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Delete call failed; the user may still exist server-side.")
				return adminRunError(err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&assumeYes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

// confirmPrompt gates destructive actions. Reads one line from the command's
// input; anything but y/yes aborts.
func confirmPrompt(cmd *cobra.Command, label string, assumeYes bool) func() bool {
	return func() bool {
		if assumeYes {
			return true
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", label)
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false
		}

		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

func adminRunError(err error) error {
	if apiErr, ok := domain.AsAPIError(err); ok {
		return fmt.Errorf("%s", apiErr.DisplayMessage())
	}
	return err
}
