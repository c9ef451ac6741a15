// Package edgeshift is documented in types.go.
package edgeshift
