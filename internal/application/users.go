package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/ports"
)

// UsersController owns the super_admin user list. Deletion follows the same
// confirmation-gated, optimistic-without-rollback policy as bots.
type UsersController struct {
	client ports.APIClient
	logger *slog.Logger

	mu     sync.Mutex
	users  []domain.User
	closed bool
}

func NewUsersController(client ports.APIClient, logger *slog.Logger) *UsersController {
	if logger == nil {
		logger = slog.Default()
	}

	return &UsersController{
		client: client,
		logger: logger,
	}
}

// List fetches all users. Failure leaves the existing list untouched.
func (c *UsersController) List(ctx context.Context) error {
	var fetched []domain.User
	err := c.client.Do(ctx, http.MethodGet, "/admin/users", nil, &fetched)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return domain.ErrSessionClosed
	}

	if err != nil {
		c.logger.Warn("user list refresh failed", "err", err)
		return err
	}

	c.users = fetched
	return nil
}

// Delete removes the user locally once the call is issued, success or not.
// super_admin rows are refused before any call goes out.
func (c *UsersController) Delete(ctx context.Context, id domain.UserID, confirm func() bool) error {
	c.mu.Lock()
	for _, user := range c.users {
		if user.ID == id && user.Role == domain.RoleSuperAdmin {
			c.mu.Unlock()
			return fmt.Errorf("refusing to delete super_admin user %d", id)
		}
	}
	c.mu.Unlock()

	if confirm == nil || !confirm() {
		return domain.ErrNotConfirmed
	}

	err := c.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return domain.ErrSessionClosed
	}

	kept := c.users[:0]
	for _, user := range c.users {
		if user.ID != id {
			kept = append(kept, user)
		}
	}
	c.users = kept

	if err != nil {
		c.logger.Warn("user delete call failed; entry removed locally anyway", "user_id", id, "err", err)
		return err
	}

	return nil
}

// Users returns a copy of the current list.
func (c *UsersController) Users() []domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.User, len(c.users))
	copy(out, c.users)
	return out
}

// Close drops any late responses instead of applying them.
func (c *UsersController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
