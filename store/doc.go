// Package store implements the threshold-protected password store: the
// account map, its fresh/locked/unlocked lifecycle, and the create,
// validate, unlock, and persist operations built on top of the shares
// package's secret-sharing engine.
//
// A Store is created two ways: NewFresh generates a new secret and
// starts unlocked with no accounts; NewFromFile loads a previously
// persisted account map and starts locked, requiring a successful Unlock
// before protector and shielded records can be validated or created.
//
// A *Store is not safe for concurrent use. Callers that share a store
// across goroutines must provide their own mutual exclusion.
package store
