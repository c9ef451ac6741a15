// Package rangerouter is documented in rangerouter.go.
package rangerouter
