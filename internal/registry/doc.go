// Package registry owns every room a server process hosts: a
// concurrency-safe, injectable collaborator rather than a package-level
// singleton, so a server can run many independent tables side by side.
// Grounded on the teacher's internal/server.GameManager, generalized from
// a map of named poker games to a map of Guandan rooms keyed by room ID.
package registry
