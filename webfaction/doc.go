// Package webfaction provides a client for the WebFaction XML-RPC
// account-management API.
//
// The client authenticates once against https://api.webfaction.com (API
// version 2), stores the opaque session ID the server issues, and replays it
// as the first parameter of every subsequent call. Each method is a thin
// proxy to a server-side procedure: it validates a few string or enum
// arguments, forwards exactly one remote call, logs the result and returns
// the decoded value or an error. There is no retry, caching or connection
// pooling; the remote service owns all behavior.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := webfaction.NewClient(
//		webfaction.DefaultAPIURL,
//		"username", "password", "Web308",
//		logger,
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	usage, err := client.ListDiskUsage(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Invalid arguments are rejected before any network traffic with sentinel
// errors such as ErrInvalidName or ErrInvalidDatabaseType. Remote faults and
// transport failures are wrapped in a CallError carrying the API method name;
// no classification beyond that is attempted.
package webfaction
