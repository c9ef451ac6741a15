// Package gridplane is documented in plane2d.go.
package gridplane
