// Package store owns the persistence layer of the API: the relational
// database connection shared with route groups and the fixed-window
// rate-limit stores (in-process memory, Redis and SQL).
//
// The database handle is created once by [NewConnection] and passed
// explicitly to its consumers; the package keeps no global state.
package store
