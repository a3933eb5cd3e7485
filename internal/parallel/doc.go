// Package parallel splits per-row image work across goroutines.
package parallel
