package tiller

import _ "embed"

// Version is the current version of the library, embedded from the VERSION
// file at build time.
//
//go:embed VERSION
var Version string
