package application

import "github.com/vivekpraj/website-to-chatbot-cli/internal/domain"

// Decision is what a gated view does after the guard runs.
type Decision int

const (
	// Admit renders the view normally.
	Admit Decision = iota
	// RedirectLogin sends the caller to the unauthenticated entry view.
	RedirectLogin
	// RedirectDashboard sends an authenticated caller whose role does not
	// satisfy the view to the default authenticated view. Wrong place, not
	// an error.
	RedirectDashboard
)

// Guard gates views by the advisory role decoded from the stored credential.
// This is presentation convenience, not a security boundary: the decoded
// claims are unsigned as far as this client is concerned and the backend
// re-authorizes every privileged call itself.
type Guard struct {
	session *Session
}

func NewGuard(session *Session) *Guard {
	return &Guard{session: session}
}

// Check evaluates the gate once, at view activation. It does not watch for
// later credential changes within the same view's lifetime.
func (g *Guard) Check(required ...domain.Role) Decision {
	if !g.session.Authenticated() {
		return RedirectLogin
	}

	if len(required) == 0 {
		return Admit
	}

	role, ok := g.session.Role()
	if !ok {
		return RedirectDashboard
	}

	for _, want := range required {
		if role == want {
			return Admit
		}
	}

	return RedirectDashboard
}
