// Package postmanclient provides the primary entry point for constructing a
// Postman API client that implements the postman.Client interface.
//
// It layers configuration, HTTP transport, authentication, retries, and API
// version detection on top of the resource interfaces and types defined in
// the postman package. Most applications should import postmanclient to build
// a client, then use the returned postman.Client to access resource-specific
// clients, for example Collections(), Environments(), Monitors(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/postlane-io/postman-client/pkg/postman"
//	  "github.com/postlane-io/postman-client/pkg/postmanclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just an API key.
//	  cli, err := postmanclient.NewWithAPIKey(ctx, "PMAK-...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or fully configured:
//	  cli, err = postmanclient.New(ctx, &postman.Config{
//	    APIKey:      "PMAK-...",
//	    WorkspaceID: "workspace-id", // default scope for list/create
//	    RetryMax:    5,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  collections, err := cli.Collections().List(ctx, "")
//	  if err != nil { log.Fatal(err) }
//	  _ = collections
//	}
//
// # Environment configuration
//
// NewFromEnv reads POSTMAN_API_KEY and friends from the environment, loading
// a .env file from the working directory first when one exists.
package postmanclient
