package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stephen2m/webfaction-stats/filter"
	"github.com/stephen2m/webfaction-stats/webfaction"
)

var (
	disableSpamProtection bool
	discardSpam           bool
	spamRedirectFolder    string
)

// mailboxCmd represents the mailbox command group
var mailboxCmd = &cobra.Command{
	Use:   "mailbox",
	Short: "Manage mailboxes on the account",
}

var mailboxListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mailboxes",
	RunE:  runMailboxList,
}

var mailboxCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a mailbox",
	Long: `Create a mailbox. The server generates a password for it, which is
printed once on success.`,
	Args: cobra.ExactArgs(1),
	RunE: runMailboxCreate,
}

var mailboxDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a mailbox and all messages stored in it",
	Args:  cobra.ExactArgs(1),
	RunE:  runMailboxDelete,
}

var mailboxPasswdCmd = &cobra.Command{
	Use:   "passwd NAME",
	Short: "Change the password of a mailbox",
	Args:  cobra.ExactArgs(1),
	RunE:  runMailboxPasswd,
}

func init() {
	mailboxListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, e.g. 'DiscardSpam'")

	mailboxCreateCmd.Flags().BoolVar(&disableSpamProtection, "no-spam-protection", false, "disable spam protection for the mailbox")
	mailboxCreateCmd.Flags().BoolVar(&discardSpam, "discard-spam", false, "discard messages marked as spam")
	mailboxCreateCmd.Flags().StringVar(&spamRedirectFolder, "spam-redirect-folder", "", "folder to deliver spam to instead of the inbox")

	mailboxDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")

	mailboxPasswdCmd.Flags().StringVar(&newPassword, "password", "", "new password (prompted for when omitted)")

	mailboxCmd.AddCommand(mailboxListCmd)
	mailboxCmd.AddCommand(mailboxCreateCmd)
	mailboxCmd.AddCommand(mailboxDeleteCmd)
	mailboxCmd.AddCommand(mailboxPasswdCmd)
	rootCmd.AddCommand(mailboxCmd)
}

func runMailboxList(cmd *cobra.Command, args []string) error {
	mailboxes, err := client.ListMailboxes(context.Background())
	if err != nil {
		return err
	}

	if filterExpr != "" {
		pred, err := filter.Compile[webfaction.Mailbox](filterExpr)
		if err != nil {
			return err
		}
		mailboxes = filter.Apply(mailboxes, pred)
	}

	if len(mailboxes) == 0 {
		fmt.Println("No mailboxes found.")
		return nil
	}

	fmt.Printf("Found %d mailboxes:\n", len(mailboxes))
	fmt.Println(strings.Repeat("-", 80))

	for _, box := range mailboxes {
		fmt.Printf("• %s", box.Name)
		if box.EnableSpamProtection {
			fmt.Printf(" [spam protection]")
		}
		if box.DiscardSpam {
			fmt.Printf(" [discards spam]")
		}
		fmt.Println()
		if box.SpamRedirectFolder != "" {
			fmt.Printf("  Spam folder: %s\n", box.SpamRedirectFolder)
		}
	}

	return nil
}

func runMailboxCreate(cmd *cobra.Command, args []string) error {
	opts := webfaction.DefaultMailboxOptions()
	opts.EnableSpamProtection = !disableSpamProtection
	opts.DiscardSpam = discardSpam
	opts.SpamRedirectFolder = spamRedirectFolder

	mailbox, err := client.CreateMailbox(context.Background(), args[0], opts)
	if err != nil {
		return err
	}

	fmt.Printf("Created mailbox %s\n", mailbox.Name)
	if mailbox.Password != "" {
		fmt.Printf("Generated password: %s\n", mailbox.Password)
	}

	return nil
}

func runMailboxDelete(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !confirm(fmt.Sprintf("Delete mailbox %q and all its messages?", name)) {
		logger.Info().Str("mailbox", name).Msg("Deletion cancelled")
		return nil
	}

	if err := client.DeleteMailbox(context.Background(), name); err != nil {
		return err
	}

	fmt.Printf("Deleted mailbox %s\n", name)
	return nil
}

func runMailboxPasswd(cmd *cobra.Command, args []string) error {
	pw := newPassword
	if pw == "" {
		var err error
		pw, err = promptNewPassword()
		if err != nil {
			return err
		}
	}

	if err := client.ChangeMailboxPassword(context.Background(), args[0], pw); err != nil {
		return err
	}

	fmt.Printf("Changed password for mailbox %s\n", args[0])
	return nil
}
