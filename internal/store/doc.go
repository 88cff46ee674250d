// Package store defines the narrow persistence interfaces the dictation
// engine consumes, together with the sentinel errors implementations must
// return. Concrete storage lives in internal/platform; services depend only
// on these interfaces.
package store
