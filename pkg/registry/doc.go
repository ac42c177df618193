// Package registry provides a generic, thread-safe registry keyed by
// case-insensitive names. The output profile table is built on it.
package registry
