// Package app wires the bookdesk application together: configuration, the
// rotating file logger, the catalog client, the persisted session, and the
// terminal UI. Run blocks until the context is cancelled or the user quits.
package app
