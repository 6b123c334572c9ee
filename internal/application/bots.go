package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/ports"
)

// BotsController owns the in-memory list of the caller's bots. List replaces
// the list wholesale on success and leaves it alone on failure; Create
// prepends optimistically from the server response; Delete removes locally
// as soon as the call is issued, with no rollback on failure (the known
// optimistic-without-reconciliation policy).
type BotsController struct {
	client ports.APIClient
	logger *slog.Logger

	mu        sync.Mutex
	bots      []domain.Bot
	creating  bool
	createErr string
	closed    bool
}

func NewBotsController(client ports.APIClient, logger *slog.Logger) *BotsController {
	if logger == nil {
		logger = slog.Default()
	}

	return &BotsController{
		client: client,
		logger: logger,
	}
}

// List fetches the caller's bots and replaces the local list in server
// order. A failure is logged and the already-visible list is left untouched;
// the returned error is informational only.
func (c *BotsController) List(ctx context.Context) error {
	var fetched []domain.Bot
	err := c.client.Do(ctx, http.MethodGet, "/bots/my", nil, &fetched)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return domain.ErrSessionClosed
	}

	if err != nil {
		c.logger.Warn("bot list refresh failed", "err", err)
		return err
	}

	c.bots = fetched
	return nil
}

// ListAll fetches every bot in the system (super_admin view, with owner
// email and message counts). Same non-destructive failure policy as List.
func (c *BotsController) ListAll(ctx context.Context) error {
	var fetched []domain.Bot
	err := c.client.Do(ctx, http.MethodGet, "/admin/bots", nil, &fetched)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return domain.ErrSessionClosed
	}

	if err != nil {
		c.logger.Warn("admin bot list refresh failed", "err", err)
		return err
	}

	c.bots = fetched
	return nil
}

type createBotRequest struct {
	WebsiteURL string `json:"website_url"`
}

// Create validates the URL locally, then asks the backend to create the bot
// and prepends the returned Bot (newest first). While a create is in flight,
// further creates are refused so a double submission cannot happen.
func (c *BotsController) Create(ctx context.Context, websiteURL string) (domain.Bot, error) {
	if strings.TrimSpace(websiteURL) == "" {
		return domain.Bot{}, domain.ErrEmptyWebsiteURL
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.Bot{}, domain.ErrSessionClosed
	}
	if c.creating {
		c.mu.Unlock()
		return domain.Bot{}, domain.ErrCreateInFlight
	}
	c.creating = true
	c.mu.Unlock()

	var created domain.Bot
	err := c.client.Do(ctx, http.MethodPost, "/bots/create", createBotRequest{WebsiteURL: websiteURL}, &created)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.creating = false

	if c.closed {
		return domain.Bot{}, domain.ErrSessionClosed
	}

	if err != nil {
		if apiErr, ok := domain.AsAPIError(err); ok {
			c.createErr = apiErr.DisplayMessage()
		} else {
			c.createErr = "Something went wrong"
		}
		return domain.Bot{}, err
	}

	c.createErr = ""
	c.bots = append([]domain.Bot{created}, c.bots...)
	return created, nil
}

// Delete asks confirm before issuing the call; an unconfirmed delete is a
// no-op. Once the call has been issued the bot is removed from the local
// list whether or not the server reports success; the returned error is for
// display only and does not restore the entry.
func (c *BotsController) Delete(ctx context.Context, id domain.BotID, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return domain.ErrNotConfirmed
	}

	err := c.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/admin/bots/%s", id), nil, nil)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return domain.ErrSessionClosed
	}

	c.removeLocked(id)

	if err != nil {
		c.logger.Warn("bot delete call failed; entry removed locally anyway", "bot_id", id, "err", err)
		return err
	}

	return nil
}

// Bots returns a copy of the current list.
func (c *BotsController) Bots() []domain.Bot {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Bot, len(c.bots))
	copy(out, c.bots)
	return out
}

// CreateError is the display message from the most recent failed create,
// empty after a successful one.
func (c *BotsController) CreateError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.createErr
}

// Creating reports whether a create call is in flight, so the triggering
// control can stay disabled for the call's duration.
func (c *BotsController) Creating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.creating
}

// Close marks the owning view as gone. Responses that arrive afterwards are
// dropped instead of mutating a list nobody renders anymore.
func (c *BotsController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *BotsController) removeLocked(id domain.BotID) {
	kept := c.bots[:0]
	for _, bot := range c.bots {
		if bot.ID != id {
			kept = append(kept, bot)
		}
	}
	c.bots = kept
}
