package webfaction

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><string>sess-1</string></value>
<value><struct>
<member><name>id</name><value><int>42</int></value></member>
<member><name>username</name><value><string>demo</string></value></member>
<member><name>home</name><value><string>/home</string></value></member>
<member><name>mail_server</name><value><string>Mailbox12</string></value></member>
<member><name>web_server</name><value><string>Web308</string></value></member>
</struct></value>
</data></array></value></param></params></methodResponse>`

const faultResponse = `<?xml version="1.0"?>
<methodResponse><fault><value><struct>
<member><name>faultCode</name><value><int>1</int></value></member>
<member><name>faultString</name><value><string>remote error</string></value></member>
</struct></value></fault></methodResponse>`

const boolResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><boolean>1</boolean></value></param></params></methodResponse>`

// testServer replays a queue of canned XML-RPC responses and records the
// request bodies it saw.
type testServer struct {
	*httptest.Server
	mu     sync.Mutex
	bodies []string
}

func newTestServer(t *testing.T, responses ...string) *testServer {
	t.Helper()

	ts := &testServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		ts.mu.Lock()
		ts.bodies = append(ts.bodies, string(body))
		idx := len(ts.bodies) - 1
		ts.mu.Unlock()

		if !assert.Less(t, idx, len(responses), "unexpected extra API call") {
			http.Error(w, "unexpected call", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/xml")
		fmt.Fprint(w, responses[idx])
	}))
	t.Cleanup(ts.Close)

	return ts
}

// requests returns the raw request bodies received so far.
func (ts *testServer) requests() []string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]string(nil), ts.bodies...)
}

// newTestClient logs into a test server that will serve the given responses
// after the login exchange.
func newTestClient(t *testing.T, responses ...string) (*Client, *testServer) {
	t.Helper()

	ts := newTestServer(t, append([]string{loginResponse}, responses...)...)
	client, err := NewClient(ts.URL, "demo", "secret", "Web308", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client, ts
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("logs in and stores the session", func(t *testing.T) {
		client, ts := newTestClient(t)

		assert.Equal(t, "sess-1", client.session)

		account := client.Account()
		assert.Equal(t, int64(42), account.ID)
		assert.Equal(t, "demo", account.Username)
		assert.Equal(t, "/home", account.Home)
		assert.Equal(t, "Mailbox12", account.MailServer)
		assert.Equal(t, "Web308", account.WebServer)

		requests := ts.requests()
		require.Len(t, requests, 1)
		assert.Contains(t, requests[0], "<methodName>login</methodName>")
		assert.Contains(t, requests[0], "demo")
		assert.Contains(t, requests[0], "Web308")
		assert.Contains(t, requests[0], "<int>2</int>")
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := NewClient("http://localhost", "", "secret", "Web308", logger)
		assert.ErrorIs(t, err, ErrMissingCredentials)

		_, err = NewClient("http://localhost", "demo", "", "Web308", logger)
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("missing machine", func(t *testing.T) {
		_, err := NewClient("http://localhost", "demo", "secret", "", logger)
		assert.ErrorIs(t, err, ErrMissingMachine)
	})

	t.Run("login fault", func(t *testing.T) {
		ts := newTestServer(t, faultResponse)

		_, err := NewClient(ts.URL, "demo", "wrong", "Web308", logger)
		require.Error(t, err)

		var callErr *CallError
		require.ErrorAs(t, err, &callErr)
		assert.Equal(t, "login", callErr.Method)
	})
}

func TestSystem(t *testing.T) {
	const systemResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><string>total 12
drwxr-xr-x 3 demo demo
</string></value></param></params></methodResponse>`

	t.Run("returns command output", func(t *testing.T) {
		client, ts := newTestClient(t, systemResponse)

		output, err := client.System(context.Background(), "ls -la")
		require.NoError(t, err)
		assert.Contains(t, output, "total 12")

		requests := ts.requests()
		require.Len(t, requests, 2)
		assert.Contains(t, requests[1], "<methodName>system</methodName>")
		assert.Contains(t, requests[1], "sess-1")
		assert.Contains(t, requests[1], "ls -la")
	})

	t.Run("empty command makes no remote call", func(t *testing.T) {
		client, ts := newTestClient(t)

		_, err := client.System(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrEmptyCommand)
		assert.Len(t, ts.requests(), 1)
	})

	t.Run("remote fault", func(t *testing.T) {
		client, _ := newTestClient(t, faultResponse)

		output, err := client.System(context.Background(), "false")
		assert.Empty(t, output)

		var callErr *CallError
		require.ErrorAs(t, err, &callErr)
		assert.Equal(t, "system", callErr.Method)
	})
}

func TestCallError(t *testing.T) {
	inner := errors.New("boom")
	err := &CallError{Method: "list_dbs", Err: inner}

	assert.Equal(t, "webfaction: list_dbs failed: boom", err.Error())
	assert.ErrorIs(t, err, inner)
}
