// Package catalog provides the domain model and HTTP client for the
// bookstore catalog API.
//
// # Overview
//
// This package defines the Book record, the fixed category table, discounted
// price arithmetic, and a typed client for every remote operation the admin
// console performs: listing, lookup, related-book queries, catalog-code
// generation, multipart create/update, delete, and authentication.
//
// # Client Usage
//
// Create a client with the API base URL from configuration:
//
//	client, err := catalog.NewClient(cfg.APIBase, cfg.RequestTimeout)
//	if err != nil {
//		return err
//	}
//
//	books, err := client.ListBooks(ctx)
//	if err != nil {
//		// every remote error is displayable; see errors.go
//	}
//
// # Error Taxonomy
//
// Remote failures are mapped to a small set of displayable errors:
//
//   - NetworkError: transport failure, no meaningful HTTP response
//   - ErrNotFound: the catalog has no matching book (404)
//   - AuthError: rejected credentials (401/403)
//   - ConflictError: duplicate registration (409)
//   - ServerError: any other non-2xx, message taken from the body
//   - ValidationError: client-side check failed before any network call
//
// Callers convert these into toasts or inline banners; none are fatal.
//
// # Mutations
//
// Create and update submit multipart forms (the backend stores uploaded
// cover images on disk). The image part is attached only when a new local
// file was chosen, so an unchanged server-side image path is never re-sent.
// The client performs no incremental cache maintenance: after a successful
// mutation the owning screen re-lists the catalog.
package catalog
