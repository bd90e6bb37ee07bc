// Package repository contains the SQL behind every route, separated from
// HTTP handlers.  Repositories run against a Querier so the same code works
// on the pool, on a per-request connection or inside a transaction.
package repository

import "errors"

// ErrNotFound is returned when a looked-up row does not exist.  Handlers
// should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
