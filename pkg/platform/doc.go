// Package platform provides types, interfaces, and helpers for working with the
// Platform REST API.
//
// # Overview
//
// The platform package defines the domain types (Organization, Project,
// Customer, Reservation, Order, Menu, Product, Deployment, PhoneNumber,
// VoiceConfiguration), the interfaces of the resource-oriented clients
// (ProjectsClient, CustomersClient, ...), the response envelope, and the error
// taxonomy. A concrete implementation is provided by the platformclient
// package, which validates configuration and wires the shared transport. Most
// consumers should import platformclient to construct a client and then use
// the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/platform-client/pkg/platform"
//	  "github.com/fivetwenty-io/platform-client/pkg/platformclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := platformclient.New(&platform.Config{APIKey: "pk_live_..."})
//	  if err != nil { log.Fatal(err) }
//
//	  org, err := cli.Organizations().Get(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = org
//	}
//
// # Envelope
//
// Every response is wrapped in an Envelope. On success the client returns the
// envelope's data only. A response with success=false is always reported as an
// *APIError, even when the HTTP status is 2xx.
//
// # Queries and pagination
//
// List operations take ListParams. Only the fields that are set are sent, so
// an empty ListParams means "server defaults". PaginatedResult carries the
// page plus PaginationMeta. FetchAllPages and PaginationIterator walk every
// page:
//
//	all, err := platform.FetchAllPages(ctx, cli.Projects().List, platform.NewListParams().WithPageSize(50), 0)
//
// # Errors
//
// Every operation either returns its payload or fails with exactly one of
// *ConfigurationError, *ValidationError, *APIError or *NetworkError. Use
// errors.As, KindOf, or helpers such as IsNotFound and IsTimeout to branch.
// The client never retries; callers decide which errors are transient.
//
// # Validation
//
// Create and update payloads are checked locally before any network call.
// Schemas implement Validator and are built from struct tags
// (NewStructSchema) or from rule sets (NewRuleSchema).
//
// # Interceptors and metrics
//
// Request and response interceptors observe or decorate every call. They are
// fixed when the client is constructed. NewMetrics exports Prometheus
// collectors for request counts, latency and error kinds.
package platform
