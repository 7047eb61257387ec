package webfaction

import (
	"fmt"
	"regexp"
)

// Account holds the user info struct returned by the login call.
type Account struct {
	ID         int64
	Username   string
	Home       string
	MailServer string
	WebServer  string
}

// accountFromMap converts the generic struct of the login response.
func accountFromMap(v interface{}) Account {
	m, ok := v.(map[string]interface{})
	if !ok {
		return Account{}
	}
	return Account{
		ID:         intField(m, "id"),
		Username:   stringField(m, "username"),
		Home:       stringField(m, "home"),
		MailServer: stringField(m, "mail_server"),
		WebServer:  stringField(m, "web_server"),
	}
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func intField(m map[string]interface{}, key string) int64 {
	switch n := m[key].(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

// DatabaseType identifies one of the two database engines WebFaction runs.
type DatabaseType string

// Supported database types.
const (
	MySQL      DatabaseType = "mysql"
	PostgreSQL DatabaseType = "postgresql"
)

// Valid reports whether the type is one the API accepts.
func (t DatabaseType) Valid() bool {
	return t == MySQL || t == PostgreSQL
}

// ParseDatabaseType converts a string into a DatabaseType.
func ParseDatabaseType(s string) (DatabaseType, error) {
	t := DatabaseType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q (must be 'mysql' or 'postgresql')", ErrInvalidDatabaseType, s)
	}
	return t, nil
}

// Shell is a login shell for shell users.
type Shell string

// Shells the control panel accepts for shell users.
const (
	ShellNone Shell = "none"
	ShellBash Shell = "bash"
	ShellSh   Shell = "sh"
	ShellKsh  Shell = "ksh"
	ShellCsh  Shell = "csh"
	ShellTcsh Shell = "tcsh"
)

// Valid reports whether the shell is one the API accepts.
func (s Shell) Valid() bool {
	switch s {
	case ShellNone, ShellBash, ShellSh, ShellKsh, ShellCsh, ShellTcsh:
		return true
	}
	return false
}

// ParseShell converts a string into a Shell.
func ParseShell(s string) (Shell, error) {
	sh := Shell(s)
	if !sh.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidShell, s)
	}
	return sh, nil
}

// Database is an entry of the list_dbs response.
type Database struct {
	ID      int64        `xmlrpc:"id"`
	Name    string       `xmlrpc:"name"`
	Type    DatabaseType `xmlrpc:"db_type"`
	Machine string       `xmlrpc:"machine"`
}

// DatabaseUser is an entry of the list_db_users response and the result of
// create_db_user.
type DatabaseUser struct {
	Username string       `xmlrpc:"username"`
	Type     DatabaseType `xmlrpc:"db_type"`
	Machine  string       `xmlrpc:"machine"`
}

// Mailbox is an entry of the list_mailboxes response. Password is only set
// on the struct returned by create_mailbox, where the server generates one.
type Mailbox struct {
	ID                   int64  `xmlrpc:"id"`
	Name                 string `xmlrpc:"mailbox"`
	EnableSpamProtection bool   `xmlrpc:"enable_spam_protection"`
	DiscardSpam          bool   `xmlrpc:"discard_spam"`
	SpamRedirectFolder   string `xmlrpc:"spam_redirect_folder"`
	UseManualProcmailrc  bool   `xmlrpc:"use_manual_procmailrc"`
	ManualProcmailrc     string `xmlrpc:"manual_procmailrc"`
	Password             string `xmlrpc:"password"`
}

// ShellUser is an entry of the list_users response.
type ShellUser struct {
	ID       int64    `xmlrpc:"id"`
	Username string   `xmlrpc:"username"`
	Shell    Shell    `xmlrpc:"shell"`
	Groups   []string `xmlrpc:"groups"`
}

// App is an entry of the list_apps response.
type App struct {
	ID        int64  `xmlrpc:"id"`
	Name      string `xmlrpc:"name"`
	Type      string `xmlrpc:"type"`
	Autostart bool   `xmlrpc:"autostart"`
	PortOpen  bool   `xmlrpc:"port_open"`
	ExtraInfo string `xmlrpc:"extra_info"`
	Machine   string `xmlrpc:"machine"`
}

// DiskUsageItem is a single named entry of the disk usage report.
type DiskUsageItem struct {
	Name string `xmlrpc:"name"`
	Size string `xmlrpc:"size"`
}

// DiskUsage is the struct returned by list_disk_usage.
type DiskUsage struct {
	HomeDirectories     []DiskUsageItem `xmlrpc:"home_directories"`
	Mailboxes           []DiskUsageItem `xmlrpc:"mailboxes"`
	MySQLDatabases      []DiskUsageItem `xmlrpc:"mysql_databases"`
	PostgreSQLDatabases []DiskUsageItem `xmlrpc:"postgresql_databases"`
	Total               string          `xmlrpc:"total"`
	Quota               string          `xmlrpc:"quota"`
	Percentage          string          `xmlrpc:"percentage"`
}

// BandwidthUsage is the struct returned by list_bandwidth_usage: traffic in
// bytes keyed by period (day or month) and then by domain.
type BandwidthUsage struct {
	Daily   map[string]map[string]float64 `xmlrpc:"daily"`
	Monthly map[string]map[string]float64 `xmlrpc:"monthly"`
}

// namePattern matches the lowercase names the control panel accepts for
// mailboxes, databases and users.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func validName(name string) bool {
	return namePattern.MatchString(name)
}
