// Package containers wraps the managed container service control-plane API.
//
// It exposes the worker-pool operations the orchestration layer needs
// (listing, sizing, resizing, worker readiness) behind the PoolGateway
// interface so tests can substitute an in-memory implementation. The real
// client talks JSON over HTTP and maps control-plane failures onto the
// typed errors in errors.go. The gateway performs no retries of its own;
// resize semantics are owned by the remote system.
package containers
