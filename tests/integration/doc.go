// Package integration provides integration tests that exercise the backend
// through an in-process HTTP client against a real MongoDB instance started
// via testcontainers.
//
// Run with: go test -tags=integration ./tests/integration/...
//
// Set MONGO_TEST_URL to reuse an already-running MongoDB instead of starting
// a container.
package integration
