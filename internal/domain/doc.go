// Package domain contains the core business entities, value objects, and
// domain logic of the application: sentences and their parent materials,
// vocabulary words with their inflected surface forms, per-user word memory
// state, and practice progress bookkeeping. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
