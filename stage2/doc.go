// Package stage2 is documented in types.go.
package stage2
