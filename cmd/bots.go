package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/adapters/render/botlist"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/application"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
)

func newBotsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bots",
		Short: "Manage your bots",
	}

	cmd.AddCommand(newBotsListCmd(app), newBotsCreateCmd(app))

	return cmd
}

func newBotsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your bots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !guardView(cmd, app, domain.RoleClient, domain.RoleSuperAdmin) {
				return nil
			}

			controller := application.NewBotsController(app.client, app.logger)
			defer controller.Close()

			if err := controller.List(cmd.Context()); err != nil {
				// Non-destructive: render whatever we have and mention the refresh.
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Could not refresh bots; showing nothing new.")
			}

			rendered := botlist.Render(controller.Bots(), botlist.RenderOptions{Now: app.clock.Now()})
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

func newBotsCreateCmd(app *app) *cobra.Command {
	var websiteURL string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a bot from a website URL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !guardView(cmd, app, domain.RoleClient, domain.RoleSuperAdmin) {
				return nil
			}

			controller := application.NewBotsController(app.client, app.logger)
			defer controller.Close()

			created, err := controller.Create(cmd.Context(), websiteURL)
			if err != nil {
				if msg := controller.CreateError(); msg != "" {
					return fmt.Errorf("%s", msg)
				}
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Bot created successfully!")
			_, _ = fmt.Fprintf(out, "bot id: %s\n", created.ID)
			_, _ = fmt.Fprintf(out, "status: %s (crawling starts server-side; check `w2c bots list`)\n", created.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&websiteURL, "url", "", "Website URL to build the bot from")

	return cmd
}
