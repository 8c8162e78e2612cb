// Package migrations holds every relational schema migration. Each file
// registers itself from init(); cmd/akc imports this package so the
// registry is populated before the CLI runs.
package migrations
