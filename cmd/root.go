package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "w2c",
		Short:         "w2c: talk to website-to-chatbot bots from the terminal",
		Long:          "w2c manages your website-to-chatbot account and bots: log in, create a bot from a website URL, chat with it, and (for super admins) manage all bots and users.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newBotsCmd(app),
		newChatCmd(app),
		newAdminCmd(app),
	)

	return rootCmd
}
