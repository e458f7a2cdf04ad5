// Package source provides CatalogSource adapters and implementations.
//
// The primary subpackages are:
//
// - memsource: in-memory store for tests and examples
// - pebblesource: durable store backed by cockroachdb/pebble
// - sourcetest: generic contract tests for CatalogSource implementations
//
// The VerifySource wrapper in this package checks that an implementation
// follows the CatalogSource contract and is meant to be enabled in tests and
// development builds.
package source
