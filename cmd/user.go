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
	userShell  string
	userGroups []string
)

// userCmd represents the user command group
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage shell users on the account",
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shell users",
	RunE:  runUserList,
}

var userCreateCmd = &cobra.Command{
	Use:   "create USERNAME",
	Short: "Create a shell user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserCreate,
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete USERNAME",
	Short: "Delete a shell user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserDelete,
}

var userPasswdCmd = &cobra.Command{
	Use:   "passwd USERNAME",
	Short: "Change the password of a shell user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserPasswd,
}

func init() {
	userListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", `filter expression, e.g. 'Shell == "bash"'`)

	userCreateCmd.Flags().StringVar(&userShell, "shell", "bash", "login shell (none, bash, sh, ksh, csh or tcsh)")
	userCreateCmd.Flags().StringSliceVar(&userGroups, "groups", nil, "additional groups for the user")

	userDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")

	userPasswdCmd.Flags().StringVar(&newPassword, "password", "", "new password (prompted for when omitted)")

	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userDeleteCmd)
	userCmd.AddCommand(userPasswdCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserList(cmd *cobra.Command, args []string) error {
	users, err := client.ListUsers(context.Background())
	if err != nil {
		return err
	}

	if filterExpr != "" {
		pred, err := filter.Compile[webfaction.ShellUser](filterExpr)
		if err != nil {
			return err
		}
		users = filter.Apply(users, pred)
	}

	if len(users) == 0 {
		fmt.Println("No shell users found.")
		return nil
	}

	fmt.Printf("Found %d shell users:\n", len(users))
	fmt.Println(strings.Repeat("-", 80))

	for _, user := range users {
		fmt.Printf("• %s (%s)", user.Username, user.Shell)
		if len(user.Groups) > 0 {
			fmt.Printf(" groups: %s", strings.Join(user.Groups, ", "))
		}
		fmt.Println()
	}

	return nil
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	shell, err := webfaction.ParseShell(userShell)
	if err != nil {
		return err
	}

	user, err := client.CreateUser(context.Background(), args[0], shell, userGroups)
	if err != nil {
		return err
	}

	fmt.Printf("Created shell user %s with shell %s\n", user.Username, user.Shell)
	return nil
}

func runUserDelete(cmd *cobra.Command, args []string) error {
	username := args[0]
	if !confirm(fmt.Sprintf("Delete shell user %q?", username)) {
		logger.Info().Str("user", username).Msg("Deletion cancelled")
		return nil
	}

	if err := client.DeleteUser(context.Background(), username); err != nil {
		return err
	}

	fmt.Printf("Deleted shell user %s\n", username)
	return nil
}

func runUserPasswd(cmd *cobra.Command, args []string) error {
	pw := newPassword
	if pw == "" {
		var err error
		pw, err = promptNewPassword()
		if err != nil {
			return err
		}
	}

	if err := client.ChangeUserPassword(context.Background(), args[0], pw); err != nil {
		return err
	}

	fmt.Printf("Changed password for shell user %s\n", args[0])
	return nil
}
