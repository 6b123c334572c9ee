package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Login(cmd.Context(), email, password); err != nil {
				return loginRunError(cmd, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Register(cmd.Context(), email, password); err != nil {
				return loginRunError(cmd, err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Registration successful. You can now run `w2c login`.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Logout(); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session's decoded claims",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.session.Authenticated() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}

			claims := app.session.Claims()
			if claims == nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "A credential is stored but its claims could not be decoded.")
				return nil
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "role:    %s\n", claims.Role)
			_, _ = fmt.Fprintf(out, "user id: %d\n", claims.UserID)
			if !claims.ExpiresAt.IsZero() {
				_, _ = fmt.Fprintf(out, "expires: %s", claims.ExpiresAt.Format(time.RFC3339))
				if claims.Expired(app.clock.Now()) {
					_, _ = fmt.Fprint(out, " (expired)")
				}
				_, _ = fmt.Fprintln(out)
			}
			return nil
		},
	}
}

// loginRunError swaps the wire error for its display message when it is a
// classified API error, so auth failures read like the web UI's.
func loginRunError(cmd *cobra.Command, err error) error {
	if apiErr, ok := domain.AsAPIError(err); ok {
		return fmt.Errorf("%s", apiErr.DisplayMessage())
	}
	return err
}
