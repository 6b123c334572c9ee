package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/adapters/render/chatview"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/application"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
)

func newChatCmd(app *app) *cobra.Command {
	var message string
	var save, resume, plain bool

	cmd := &cobra.Command{
		Use:   "chat <botId>",
		Short: "Chat with a bot",
		Long:  "Chat with a bot by its id. The chat endpoint is public, so no login is needed. With --message a single exchange runs and the transcript prints; without it an interactive loop starts (send an empty line or `exit` to quit).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			botID := domain.BotID(args[0])
			session := application.NewChatSession(app.client, botID, app.logger)
			defer session.Close()

			if resume {
				archived, err := app.archive.Load(cmd.Context(), botID)
				if err != nil && !errors.Is(err, domain.ErrTranscriptNotFound) {
					return fmt.Errorf("load archived transcript: %w", err)
				}
				if err == nil {
					if err := session.Preload(archived.Messages); err != nil {
						return fmt.Errorf("preload transcript: %w", err)
					}
				}
			}

			if message != "" {
				if err := runChatOnce(cmd, session, message, plain); err != nil {
					return err
				}
			} else {
				if err := runChatLoop(cmd, session, plain); err != nil {
					return err
				}
			}

			if save {
				transcript := domain.Transcript{BotID: botID, Messages: session.Transcript()}
				if err := app.archive.Save(cmd.Context(), transcript); err != nil {
					return fmt.Errorf("save transcript: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Transcript saved.")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "Send a single message instead of starting the interactive loop")
	cmd.Flags().BoolVar(&save, "save", false, "Archive the transcript locally on exit")
	cmd.Flags().BoolVar(&resume, "resume", false, "Preload the archived transcript for this bot")
	cmd.Flags().BoolVar(&plain, "plain", false, "Skip the spinner (useful for scripts and pipes)")

	return cmd
}

func runChatOnce(cmd *cobra.Command, session *application.ChatSession, text string, plain bool) error {
	sendErr := chatSend(cmd, session, text, plain)

	rendered := chatview.Render(session.Transcript(), session.Err())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), rendered)

	// Classified failures were already rendered as the session error line;
	// anything else (bad bot id typo'd into a usage mistake etc.) surfaces.
	if sendErr != nil {
		if _, ok := domain.AsAPIError(sendErr); !ok {
			return sendErr
		}
	}
	return nil
}

func runChatLoop(cmd *cobra.Command, session *application.ChatSession, plain bool) error {
	out := cmd.OutOrStdout()
	if len(session.Transcript()) > 0 {
		_, _ = fmt.Fprintln(out, chatview.Render(session.Transcript(), ""))
	} else {
		_, _ = fmt.Fprintln(out, chatview.Render(nil, ""))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		_, _ = fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" || text == "exit" || text == "quit" {
			break
		}

		if err := chatSend(cmd, session, text, plain); err != nil {
			if _, ok := domain.AsAPIError(err); !ok {
				return err
			}
		}

		if msg := session.Err(); msg != "" {
			_, _ = fmt.Fprintln(out, chatview.Render(nil, msg))
			continue
		}

		transcript := session.Transcript()
		if len(transcript) > 0 {
			_, _ = fmt.Fprintln(out, chatview.RenderMessage(transcript[len(transcript)-1]))
		}
	}

	return scanner.Err()
}

func chatSend(cmd *cobra.Command, session *application.ChatSession, text string, plain bool) error {
	if plain {
		return session.Send(cmd.Context(), text)
	}

	return runSendProgress(cmd.Context(), cmd.ErrOrStderr(), text, func(ctx context.Context) error {
		return session.Send(ctx, text)
	})
}
