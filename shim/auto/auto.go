// Package auto installs the array shims into host.ArrayPrototype when it is
// imported:
//
//	import _ "github.com/hasbyte1/go-nfallback/shim/auto"
package auto

import "github.com/hasbyte1/go-nfallback/shim"

func init() {
	shim.InstallDefault()
}
