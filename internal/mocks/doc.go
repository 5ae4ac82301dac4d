// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout
// the application, facilitating consistent and DRY testing across the
// codebase. Instead of defining inline mocks in individual test files, these
// standardized mock implementations can be reused.
//
// Each mock exposes one function field per interface method; tests set only
// the functions they care about, and unset functions fall back to zero-value
// behavior.
package mocks
