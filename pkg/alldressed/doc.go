// Package alldressed provides the types, builders and errors for working with
// the All Dressed e-commerce and subscription API.
//
// # Overview
//
// The alldressed package defines the domain types (e.g., Customer,
// Subscription, Menu, Package, Order) and the builder interfaces used to query
// and change them (e.g., SubscriptionBuilder, MenuBuilder). A concrete client
// is provided by the adclient package, which wires configuration, transport
// and logging. Most consumers construct a client with adclient and then use
// the builders exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/all-dressed/alldressed-go/pkg/adclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := adclient.NewWithKey("my-account", "sk_live_...")
//	  if err != nil { log.Fatal(err) }
//
//	  subs, err := cli.Subscriptions().ForCustomer("c1").WithMenus().Get(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = subs
//	}
//
// # Builders
//
// Every accessor of Client returns a new builder. Setters accumulate options
// and a terminal call (Get, First, Find, Create, ...) sends the request.
// Builders are single use and not safe for concurrent use; the Client is.
//
// # Entities
//
// Resources are decoded into an Entity that keeps every attribute of the
// payload. Known relations (a subscription's customer, a package's products)
// are hydrated into typed fields and left out of the attribute bag:
//
//	sub.String("status")
//	sub.Customer.Email()
//	sub.Has("discount") // true even when the discount is null
//
// # Pagination
//
// InvoiceBuilder returns a Paginated page whose Next and Previous follow the
// links of the response:
//
//	page, err := cli.Invoices().ForCustomer("c1").Get(ctx)
//	for err == nil && page.HasNext() {
//	  page, err = page.Next(ctx)
//	}
//
// # Errors
//
// Non-2xx responses become a *RequestError carrying the status and body. A
// 422 becomes a *ValidationError, or a *CardError when the card number is at
// fault. Lookups by key that 404 return a *NotFoundError matching the
// sentinel of the resource:
//
//	if errors.Is(err, alldressed.ErrZoneNotFound) { ... }
//
// Builders fail before sending anything when a required option is missing
// (ErrMissingCustomer, ErrMissingMenu, ...).
package alldressed
