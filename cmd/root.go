package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stephen2m/webfaction-stats/config"
	"github.com/stephen2m/webfaction-stats/webfaction"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *webfaction.Client

	// Command flags
	filterExpr  string
	noConfirm   bool
	newPassword string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "webfaction-stats",
	Short: "Manage a WebFaction account from the command line",
	Long: `webfaction-stats talks to the WebFaction control panel API to inspect
disk and bandwidth usage and to manage the mailboxes, databases and
shell users of an account.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records build information for the --version flag.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration, logger and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Fall back to an interactive prompt when no password is configured
	pw := cfg.WebFaction.Password
	if pw == "" {
		pw, err = promptPassword(fmt.Sprintf("WebFaction password for %s: ", cfg.WebFaction.Username))
		if err != nil {
			return err
		}
	}

	client, err = webfaction.NewClient(cfg.WebFaction.APIURL, cfg.WebFaction.Username, pw, cfg.WebFaction.Server, logger)
	if err != nil {
		return fmt.Errorf("failed to create WebFaction client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// promptPassword reads a password from the terminal without echoing it.
func promptPassword(prompt string) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("no password configured and stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(raw), nil
}

// promptNewPassword reads and confirms a new password interactively.
func promptNewPassword() (string, error) {
	pw, err := promptPassword("New password: ")
	if err != nil {
		return "", err
	}

	again, err := promptPassword("Retype new password: ")
	if err != nil {
		return "", err
	}

	if pw != again {
		return "", fmt.Errorf("passwords do not match")
	}

	return pw, nil
}

// confirm asks for confirmation before a destructive operation.
func confirm(action string) bool {
	if noConfirm || !cfg.Safety.ConfirmDelete {
		return true
	}

	fmt.Printf("%s [y/N]: ", action)
	var response string
	fmt.Scanln(&response)
	return strings.ToLower(strings.TrimSpace(response)) == "y"
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to the WebFaction API",
	Long:  `Log into the WebFaction API and display basic account information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	// Login already happened during client creation
	fmt.Println("✓ Connection successful!")

	account := client.Account()
	fmt.Printf("\nAccount:\n")
	fmt.Printf("- Username: %s\n", account.Username)
	fmt.Printf("- Home: %s\n", account.Home)
	fmt.Printf("- Web server: %s\n", account.WebServer)
	fmt.Printf("- Mail server: %s\n", account.MailServer)

	return nil
}
