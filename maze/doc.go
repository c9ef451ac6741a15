// Package maze is documented in types.go.
package maze
