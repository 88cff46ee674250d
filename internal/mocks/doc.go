// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized implementations can be reused across test packages. Each
// mock exposes function fields to override behavior per test, default
// response values for the common case, and call-tracking structs for
// verification.
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Track calls under a mutex so concurrent handlers stay race-free
package mocks
