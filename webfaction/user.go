package webfaction

import (
	"context"
	"fmt"

	"github.com/stephen2m/webfaction-stats/password"
)

// ListUsers retrieves the account's shell users.
func (c *Client) ListUsers(ctx context.Context) ([]ShellUser, error) {
	var users []ShellUser
	if err := c.call(ctx, "list_users", nil, &users); err != nil {
		return nil, err
	}

	c.logger.Debug().Msgf("Retrieved %d shell users from WebFaction", len(users))
	return users, nil
}

// CreateUser creates a shell user with the given login shell and additional
// groups.
func (c *Client) CreateUser(ctx context.Context, username string, shell Shell, groups []string) (*ShellUser, error) {
	if !validName(username) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, username)
	}
	if !shell.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShell, shell)
	}
	if groups == nil {
		groups = []string{}
	}

	var user ShellUser
	if err := c.call(ctx, "create_user", []interface{}{username, string(shell), groups}, &user); err != nil {
		return nil, err
	}

	c.logger.Info().
		Str("user", user.Username).
		Str("shell", string(shell)).
		Msg("Created shell user")
	return &user, nil
}

// DeleteUser deletes a shell user.
func (c *Client) DeleteUser(ctx context.Context, username string) error {
	if !validName(username) {
		return fmt.Errorf("%w: %q", ErrInvalidName, username)
	}

	var reply interface{}
	if err := c.call(ctx, "delete_user", []interface{}{username}, &reply); err != nil {
		return err
	}

	c.logger.Info().Str("user", username).Msg("Deleted shell user")
	return nil
}

// ChangeUserPassword sets a new password for a shell user. The password is
// strength-checked locally before any remote call.
func (c *Client) ChangeUserPassword(ctx context.Context, username, newPassword string) error {
	if !validName(username) {
		return fmt.Errorf("%w: %q", ErrInvalidName, username)
	}
	if err := password.Validate(newPassword); err != nil {
		return err
	}

	var reply interface{}
	if err := c.call(ctx, "change_user_password", []interface{}{username, newPassword}, &reply); err != nil {
		return err
	}

	c.logger.Info().Str("user", username).Msg("Changed shell user password")
	return nil
}
