// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the client services, and the local storage
// into a single process lifecycle.
package client
