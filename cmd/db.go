package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stephen2m/webfaction-stats/filter"
	"github.com/stephen2m/webfaction-stats/webfaction"
)

var dbTypeFlag string

// dbCmd represents the db command group
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage databases and database users",
}

var dbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List databases",
	RunE:  runDBList,
}

var dbCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a database",
	Args:  cobra.ExactArgs(1),
	RunE:  runDBCreate,
}

var dbDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a database and its contents",
	Args:  cobra.ExactArgs(1),
	RunE:  runDBDelete,
}

// dbUserCmd represents the db user command group
var dbUserCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage database users",
}

var dbUserListCmd = &cobra.Command{
	Use:   "list",
	Short: "List database users",
	RunE:  runDBUserList,
}

var dbUserCreateCmd = &cobra.Command{
	Use:   "create USERNAME",
	Short: "Create a database user",
	Args:  cobra.ExactArgs(1),
	RunE:  runDBUserCreate,
}

var dbUserDeleteCmd = &cobra.Command{
	Use:   "delete USERNAME",
	Short: "Delete a database user",
	Args:  cobra.ExactArgs(1),
	RunE:  runDBUserDelete,
}

var dbUserPasswdCmd = &cobra.Command{
	Use:   "passwd USERNAME",
	Short: "Change the password of a database user",
	Args:  cobra.ExactArgs(1),
	RunE:  runDBUserPasswd,
}

var dbUserGrantCmd = &cobra.Command{
	Use:   "grant USERNAME DATABASE",
	Short: "Grant a database user full permissions on a database",
	Args:  cobra.ExactArgs(2),
	RunE:  runDBUserGrant,
}

func init() {
	dbListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", `filter expression, e.g. 'Name startsWith "blog"'`)

	for _, c := range []*cobra.Command{dbCreateCmd, dbDeleteCmd, dbUserCreateCmd, dbUserDeleteCmd, dbUserPasswdCmd, dbUserGrantCmd} {
		c.Flags().StringVarP(&dbTypeFlag, "type", "t", "mysql", "database type (mysql or postgresql)")
	}

	dbCreateCmd.Flags().StringVar(&newPassword, "password", "", "database password (prompted for when omitted)")
	dbUserCreateCmd.Flags().StringVar(&newPassword, "password", "", "user password (prompted for when omitted)")
	dbUserPasswdCmd.Flags().StringVar(&newPassword, "password", "", "new password (prompted for when omitted)")

	dbDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
	dbUserDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")

	dbUserCmd.AddCommand(dbUserListCmd)
	dbUserCmd.AddCommand(dbUserCreateCmd)
	dbUserCmd.AddCommand(dbUserDeleteCmd)
	dbUserCmd.AddCommand(dbUserPasswdCmd)
	dbUserCmd.AddCommand(dbUserGrantCmd)

	dbCmd.AddCommand(dbListCmd)
	dbCmd.AddCommand(dbCreateCmd)
	dbCmd.AddCommand(dbDeleteCmd)
	dbCmd.AddCommand(dbUserCmd)
	rootCmd.AddCommand(dbCmd)
}

func runDBList(cmd *cobra.Command, args []string) error {
	databases, err := client.ListDatabases(context.Background())
	if err != nil {
		return err
	}

	if filterExpr != "" {
		pred, err := filter.Compile[webfaction.Database](filterExpr)
		if err != nil {
			return err
		}
		databases = filter.Apply(databases, pred)
	}

	if len(databases) == 0 {
		fmt.Println("No databases found.")
		return nil
	}

	fmt.Printf("Found %d databases:\n", len(databases))
	fmt.Println(strings.Repeat("-", 80))

	for _, db := range databases {
		fmt.Printf("• %s (%s on %s)\n", db.Name, db.Type, db.Machine)
	}

	return nil
}

func runDBCreate(cmd *cobra.Command, args []string) error {
	dbType, err := webfaction.ParseDatabaseType(dbTypeFlag)
	if err != nil {
		return err
	}

	pw := newPassword
	if pw == "" {
		pw, err = promptNewPassword()
		if err != nil {
			return err
		}
	}

	db, err := client.CreateDatabase(context.Background(), args[0], dbType, pw)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s database %s on %s\n", db.Type, db.Name, db.Machine)
	return nil
}

func runDBDelete(cmd *cobra.Command, args []string) error {
	dbType, err := webfaction.ParseDatabaseType(dbTypeFlag)
	if err != nil {
		return err
	}

	name := args[0]
	if !confirm(fmt.Sprintf("Delete %s database %q and its contents?", dbType, name)) {
		logger.Info().Str("database", name).Msg("Deletion cancelled")
		return nil
	}

	if err := client.DeleteDatabase(context.Background(), name, dbType); err != nil {
		return err
	}

	fmt.Printf("Deleted database %s\n", name)
	return nil
}

func runDBUserList(cmd *cobra.Command, args []string) error {
	users, err := client.ListDatabaseUsers(context.Background())
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Println("No database users found.")
		return nil
	}

	fmt.Printf("Found %d database users:\n", len(users))
	fmt.Println(strings.Repeat("-", 80))

	for _, user := range users {
		fmt.Printf("• %s (%s on %s)\n", user.Username, user.Type, user.Machine)
	}

	return nil
}

func runDBUserCreate(cmd *cobra.Command, args []string) error {
	dbType, err := webfaction.ParseDatabaseType(dbTypeFlag)
	if err != nil {
		return err
	}

	pw := newPassword
	if pw == "" {
		pw, err = promptNewPassword()
		if err != nil {
			return err
		}
	}

	user, err := client.CreateDatabaseUser(context.Background(), args[0], pw, dbType)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s user %s on %s\n", user.Type, user.Username, user.Machine)
	return nil
}

func runDBUserDelete(cmd *cobra.Command, args []string) error {
	dbType, err := webfaction.ParseDatabaseType(dbTypeFlag)
	if err != nil {
		return err
	}

	username := args[0]
	if !confirm(fmt.Sprintf("Delete %s user %q?", dbType, username)) {
		logger.Info().Str("db_user", username).Msg("Deletion cancelled")
		return nil
	}

	if err := client.DeleteDatabaseUser(context.Background(), username, dbType); err != nil {
		return err
	}

	fmt.Printf("Deleted database user %s\n", username)
	return nil
}

func runDBUserPasswd(cmd *cobra.Command, args []string) error {
	dbType, err := webfaction.ParseDatabaseType(dbTypeFlag)
	if err != nil {
		return err
	}

	pw := newPassword
	if pw == "" {
		pw, err = promptNewPassword()
		if err != nil {
			return err
		}
	}

	if err := client.ChangeDatabaseUserPassword(context.Background(), args[0], pw, dbType); err != nil {
		return err
	}

	fmt.Printf("Changed password for database user %s\n", args[0])
	return nil
}

func runDBUserGrant(cmd *cobra.Command, args []string) error {
	dbType, err := webfaction.ParseDatabaseType(dbTypeFlag)
	if err != nil {
		return err
	}

	if err := client.GrantDatabasePermissions(context.Background(), args[0], args[1], dbType); err != nil {
		return err
	}

	fmt.Printf("Granted %s permissions on %s to %s\n", dbType, args[1], args[0])
	return nil
}
