package webfaction

import (
	"context"
	"fmt"

	"github.com/stephen2m/webfaction-stats/password"
)

// MailboxOptions mirrors the optional parameters of create_mailbox.
type MailboxOptions struct {
	EnableSpamProtection bool
	DiscardSpam          bool
	SpamRedirectFolder   string
	UseManualProcmailrc  bool
	ManualProcmailrc     string
}

// DefaultMailboxOptions returns the control panel defaults for new mailboxes.
func DefaultMailboxOptions() MailboxOptions {
	return MailboxOptions{EnableSpamProtection: true}
}

// ListMailboxes retrieves the account's mailboxes.
func (c *Client) ListMailboxes(ctx context.Context) ([]Mailbox, error) {
	var mailboxes []Mailbox
	if err := c.call(ctx, "list_mailboxes", nil, &mailboxes); err != nil {
		return nil, err
	}

	c.logger.Debug().Msgf("Retrieved %d mailboxes from WebFaction", len(mailboxes))
	return mailboxes, nil
}

// CreateMailbox creates a mailbox and returns it, including the password the
// server generated for it.
func (c *Client) CreateMailbox(ctx context.Context, name string, opts MailboxOptions) (*Mailbox, error) {
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	args := []interface{}{
		name,
		opts.EnableSpamProtection,
		opts.DiscardSpam,
		opts.SpamRedirectFolder,
		opts.UseManualProcmailrc,
		opts.ManualProcmailrc,
	}

	var mailbox Mailbox
	if err := c.call(ctx, "create_mailbox", args, &mailbox); err != nil {
		return nil, err
	}

	c.logger.Info().Str("mailbox", mailbox.Name).Msg("Created mailbox")
	return &mailbox, nil
}

// DeleteMailbox deletes a mailbox and all messages stored in it.
func (c *Client) DeleteMailbox(ctx context.Context, name string) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	var reply interface{}
	if err := c.call(ctx, "delete_mailbox", []interface{}{name}, &reply); err != nil {
		return err
	}

	c.logger.Info().Str("mailbox", name).Msg("Deleted mailbox")
	return nil
}

// ChangeMailboxPassword sets a new password for a mailbox. The password is
// strength-checked locally before any remote call.
func (c *Client) ChangeMailboxPassword(ctx context.Context, name, newPassword string) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if err := password.Validate(newPassword); err != nil {
		return err
	}

	var reply interface{}
	if err := c.call(ctx, "change_mailbox_password", []interface{}{name, newPassword}, &reply); err != nil {
		return err
	}

	c.logger.Info().Str("mailbox", name).Msg("Changed mailbox password")
	return nil
}
