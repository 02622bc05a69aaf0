// Package schema provides the implementations for handling (Unix-based)
// operating system syscalls. The package serves as the foundational layer for
// filesystem interactions throughout the codebase, all other packages consume
// it only through narrow provider interfaces of their own.
package schema
