// Package adclient provides the primary entry point for constructing an All
// Dressed API client that implements the alldressed.Client interface.
//
// It layers configuration and HTTP transport on top of the builder interfaces
// and types defined in the alldressed package. Most applications import
// adclient to build a client, then use the returned alldressed.Client to get
// one builder per call chain, for example Customers(), Subscriptions() or
// Zones().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/all-dressed/alldressed-go/pkg/adclient"
//	  "github.com/all-dressed/alldressed-go/pkg/alldressed"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := adclient.New(&alldressed.Config{
//	    AccountID: "1",
//	    APIKey:    "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or from ALLDRESSED_API_KEY, ALLDRESSED_ACCOUNT_ID and friends:
//	  cli, err = adclient.NewFromEnv()
//
//	  _, err = cli.Zones().Find(ctx, "H0H0H0")
//	  if errors.Is(err, alldressed.ErrZoneNotFound) {
//	    // not delivered there
//	  }
//
//	  err = cli.Subscriptions().For("sub-1").Pause(ctx, time.Now().AddDate(0, 1, 0))
//	}
//
// Accounts
//
// Every request is scoped to /accounts/{AccountID}. A client without an
// account fails each call with alldressed.ErrMissingAccount; WithAccount
// returns a copy scoped to another account that shares the connections.
//
// Logging
//
// Config.Logger receives the logs of the client. NewLogrusLogger adapts a
// logrus logger. With Config.Debug set and no logger, requests and responses
// are logged by the standard logrus logger.
package adclient
