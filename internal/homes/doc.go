// Package homes provides the Home record and an HTTP client for the homes API.
//
// # Overview
//
// The package is split into four files:
//
//   - types.go: Home, Listing and ID, mirroring the API's JSON schema
//   - parse.go: lenient conversions from form text (counts, amenities)
//   - errors.go: the Error type returned by every gateway operation
//   - client.go: the Gateway interface and its HTTP implementation
//
// # Records
//
// A Listing is what a client submits; it has no id. A Home is a Listing plus
// the id the server assigned. Keeping them as separate types means a create
// payload can never carry a client-made id.
//
// The backend may encode ids as strings or numbers. ID accepts both and keeps
// the textual form, which is what request paths use.
//
// # Client Usage
//
//	client, err := homes.NewClient("127.0.0.1:3001", logger)
//	if err != nil {
//		return err
//	}
//
//	list, err := client.ListHomes(ctx)
//	home, err := client.GetHome(ctx, homes.ID("3"))
//	created, err := client.CreateHome(ctx, homes.Listing{Title: "Loft"})
//	err = client.DeleteHome(ctx, created.ID)
//
// # API Endpoints
//
//   - GET /homes: every home, server order, no paging
//   - GET /homes/{id}: one home
//   - POST /homes: create, body is a Listing, response is the stored Home
//   - DELETE /homes/{id}: remove, response body ignored
//
// Every request sends Content-Type and Accept set to application/json, a
// User-Agent and a fresh X-Request-ID. The request id, status and elapsed
// time are written to the debug log.
//
// # Error Handling
//
// Every failure comes back as *Error with one of these kinds:
//
//   - KindTransport: connection refused, reset, DNS, context cancelled
//   - KindStatus: any status outside 2xx, including 404
//   - KindDecode: a 2xx response whose body is not the expected JSON
//   - KindPrecondition: missing id (ErrMissingID) or a nil client
//
// The client never retries and sets no timeout of its own.
package homes
