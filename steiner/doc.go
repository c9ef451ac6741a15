// Package steiner is documented in types.go.
package steiner
