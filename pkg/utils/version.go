// Package utils holds build metadata stamped in with -ldflags.
package utils

var (
	Version   = "dev"
	Sha       = "HEAD"
	Buildtime = "dev"
)
