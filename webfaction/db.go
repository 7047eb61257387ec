package webfaction

import (
	"context"
	"fmt"

	"github.com/stephen2m/webfaction-stats/password"
)

// ListDatabases retrieves the account's databases.
func (c *Client) ListDatabases(ctx context.Context) ([]Database, error) {
	var databases []Database
	if err := c.call(ctx, "list_dbs", nil, &databases); err != nil {
		return nil, err
	}

	c.logger.Debug().Msgf("Retrieved %d databases from WebFaction", len(databases))
	return databases, nil
}

// ListDatabaseUsers retrieves the account's database users.
func (c *Client) ListDatabaseUsers(ctx context.Context) ([]DatabaseUser, error) {
	var users []DatabaseUser
	if err := c.call(ctx, "list_db_users", nil, &users); err != nil {
		return nil, err
	}

	c.logger.Debug().Msgf("Retrieved %d database users from WebFaction", len(users))
	return users, nil
}

// CreateDatabase creates a database owned by a user of the same name.
func (c *Client) CreateDatabase(ctx context.Context, name string, dbType DatabaseType, dbPassword string) (*Database, error) {
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !dbType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDatabaseType, dbType)
	}
	if err := password.Validate(dbPassword); err != nil {
		return nil, err
	}

	var database Database
	if err := c.call(ctx, "create_db", []interface{}{name, string(dbType), dbPassword}, &database); err != nil {
		return nil, err
	}

	c.logger.Info().
		Str("database", database.Name).
		Str("db_type", string(dbType)).
		Msg("Created database")
	return &database, nil
}

// DeleteDatabase deletes a database and its contents.
func (c *Client) DeleteDatabase(ctx context.Context, name string, dbType DatabaseType) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !dbType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDatabaseType, dbType)
	}

	var reply interface{}
	if err := c.call(ctx, "delete_db", []interface{}{name, string(dbType)}, &reply); err != nil {
		return err
	}

	c.logger.Info().Str("database", name).Str("db_type", string(dbType)).Msg("Deleted database")
	return nil
}

// CreateDatabaseUser creates a database user and returns the resulting
// username/type/machine record.
func (c *Client) CreateDatabaseUser(ctx context.Context, username, userPassword string, dbType DatabaseType) (*DatabaseUser, error) {
	if !validName(username) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, username)
	}
	if !dbType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDatabaseType, dbType)
	}
	if err := password.Validate(userPassword); err != nil {
		return nil, err
	}

	var user DatabaseUser
	if err := c.call(ctx, "create_db_user", []interface{}{username, userPassword, string(dbType)}, &user); err != nil {
		return nil, err
	}

	c.logger.Info().
		Str("db_user", user.Username).
		Str("db_type", string(dbType)).
		Msg("Created database user")
	return &user, nil
}

// DeleteDatabaseUser deletes a database user.
func (c *Client) DeleteDatabaseUser(ctx context.Context, username string, dbType DatabaseType) error {
	if !validName(username) {
		return fmt.Errorf("%w: %q", ErrInvalidName, username)
	}
	if !dbType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDatabaseType, dbType)
	}

	var reply interface{}
	if err := c.call(ctx, "delete_db_user", []interface{}{username, string(dbType)}, &reply); err != nil {
		return err
	}

	c.logger.Info().Str("db_user", username).Str("db_type", string(dbType)).Msg("Deleted database user")
	return nil
}

// ChangeDatabaseUserPassword sets a new password for a database user.
func (c *Client) ChangeDatabaseUserPassword(ctx context.Context, username, newPassword string, dbType DatabaseType) error {
	if !validName(username) {
		return fmt.Errorf("%w: %q", ErrInvalidName, username)
	}
	if !dbType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDatabaseType, dbType)
	}
	if err := password.Validate(newPassword); err != nil {
		return err
	}

	var reply interface{}
	if err := c.call(ctx, "change_db_user_password", []interface{}{username, newPassword, string(dbType)}, &reply); err != nil {
		return err
	}

	c.logger.Info().Str("db_user", username).Str("db_type", string(dbType)).Msg("Changed database user password")
	return nil
}

// GrantDatabasePermissions grants a database user full permissions on a
// database.
func (c *Client) GrantDatabasePermissions(ctx context.Context, username, database string, dbType DatabaseType) error {
	if !validName(username) {
		return fmt.Errorf("%w: %q", ErrInvalidName, username)
	}
	if !validName(database) {
		return fmt.Errorf("%w: %q", ErrInvalidName, database)
	}
	if !dbType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDatabaseType, dbType)
	}

	var reply interface{}
	if err := c.call(ctx, "grant_db_permissions", []interface{}{username, database, string(dbType)}, &reply); err != nil {
		return err
	}

	c.logger.Info().
		Str("db_user", username).
		Str("database", database).
		Str("db_type", string(dbType)).
		Msg("Granted database permissions")
	return nil
}
