package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// answerMsg delivers the outcome of the in-flight exchange to the progress
// view.
type answerMsg struct {
	err error
}

const sendPreviewWidth = 32

// sendProgressModel shows what is being asked and for how long while the
// exchange runs. It reads no input; the exchange itself runs outside the
// program and reports back through answerMsg.
type sendProgressModel struct {
	spinner spinner.Model
	detail  lipgloss.Style
	preview string
	started time.Time
	sendErr error
	waiting bool
}

func newSendProgressModel(userText string) sendProgressModel {
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	return sendProgressModel{
		spinner: sp,
		detail:  lipgloss.NewStyle().Faint(true),
		preview: sendPreview(userText),
		started: time.Now(),
		waiting: true,
	}
}

func (m sendProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m sendProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		m.waiting = false
		m.sendErr = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m sendProgressModel) View() string {
	if !m.waiting {
		return ""
	}

	elapsed := time.Since(m.started)
	return fmt.Sprintf("%s asking %q %s",
		m.spinner.View(),
		m.preview,
		m.detail.Render(fmt.Sprintf("(%.1fs)", elapsed.Seconds())),
	)
}

// sendPreview collapses the user's message to one short line for the
// progress view.
func sendPreview(userText string) string {
	collapsed := strings.Join(strings.Fields(userText), " ")
	runes := []rune(collapsed)
	if len(runes) <= sendPreviewWidth {
		return collapsed
	}

	return string(runes[:sendPreviewWidth]) + "…"
}

func runSendProgress(ctx context.Context, output io.Writer, userText string, send func(context.Context) error) error {
	p := tea.NewProgram(
		newSendProgressModel(userText),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	go func() {
		p.Send(answerMsg{err: send(ctx)})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}

	model, ok := final.(sendProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", final)
	}

	return model.sendErr
}
