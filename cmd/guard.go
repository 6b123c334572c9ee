package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/application"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
)

// guardView runs the role gate for one command invocation. A redirect is a
// printed pointer to the right place, not an error; the command simply does
// not render its view.
func guardView(cmd *cobra.Command, app *app, required ...domain.Role) bool {
	switch app.guard.Check(required...) {
	case application.RedirectLogin:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "You are not logged in. Run `w2c login` first.")
		return false
	case application.RedirectDashboard:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Your role does not have access here. Try `w2c bots list`.")
		return false
	default:
		return true
	}
}
