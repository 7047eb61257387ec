package webfaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/kolo/xmlrpc"
	"github.com/rs/zerolog"
)

// DefaultAPIURL is the public endpoint of the WebFaction control panel API.
const DefaultAPIURL = "https://api.webfaction.com"

// apiVersion selects version 2 of the API, which scopes the session to the
// machine named at login.
const apiVersion = 2

// Client wraps the WebFaction XML-RPC API. It authenticates once and replays
// the session ID as the first parameter of every subsequent call.
type Client struct {
	rpc      *xmlrpc.Client
	username string
	machine  string
	session  string
	account  Account
	logger   zerolog.Logger
}

// NewClient connects to the WebFaction API and logs in with the supplied
// credentials. The machine is the target server name, e.g. "Web308".
func NewClient(apiURL, username, password, machine string, logger zerolog.Logger) (*Client, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if machine == "" {
		return nil, ErrMissingMachine
	}
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	rpcClient, err := xmlrpc.NewClient(apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create XML-RPC client: %w", err)
	}

	client := &Client{
		rpc:      rpcClient,
		username: username,
		machine:  machine,
		logger:   logger,
	}

	if err := client.login(password); err != nil {
		return nil, fmt.Errorf("failed to connect to WebFaction: %w", err)
	}

	return client, nil
}

// login authenticates and stores the session ID. The response is a two
// element array of the session ID and a struct of account info.
func (c *Client) login(password string) error {
	var reply []interface{}
	err := c.rpc.Call("login", []interface{}{c.username, password, c.machine, apiVersion}, &reply)
	if err != nil {
		c.logger.Error().Err(err).Str("method", "login").Msg("WebFaction API call failed")
		return &CallError{Method: "login", Err: err}
	}

	if len(reply) != 2 {
		return fmt.Errorf("unexpected login response with %d values", len(reply))
	}
	session, ok := reply[0].(string)
	if !ok || session == "" {
		return fmt.Errorf("login response did not contain a session ID")
	}

	c.session = session
	c.account = accountFromMap(reply[1])

	c.logger.Debug().
		Str("username", c.account.Username).
		Str("web_server", c.account.WebServer).
		Msg("Logged into WebFaction")

	return nil
}

// Account returns the account info struct received at login.
func (c *Client) Account() Account {
	return c.account
}

// Close releases the underlying RPC connection.
func (c *Client) Close() error {
	return c.rpc.Close()
}

// call forwards a single API method with the session ID prepended, the way
// every post-login WebFaction method expects it.
func (c *Client) call(ctx context.Context, method string, args []interface{}, reply interface{}) error {
	params := make([]interface{}, 0, len(args)+1)
	params = append(params, c.session)
	params = append(params, args...)

	if err := c.rpc.Call(method, params, reply); err != nil {
		c.logger.Error().Err(err).Str("method", method).Msg("WebFaction API call failed")
		return &CallError{Method: method, Err: err}
	}

	return nil
}

// System runs a shell command on the account's server and returns its output.
func (c *Client) System(ctx context.Context, command string) (string, error) {
	if strings.TrimSpace(command) == "" {
		return "", ErrEmptyCommand
	}

	var output string
	if err := c.call(ctx, "system", []interface{}{command}, &output); err != nil {
		return "", err
	}

	c.logger.Debug().Str("command", command).Msg("Ran command on server")
	return output, nil
}
