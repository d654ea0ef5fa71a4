// Package filesystem provides the production implementation of the
// types.FS interface backed by the operating system.
package filesystem
