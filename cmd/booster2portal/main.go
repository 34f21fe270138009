// booster2portal converts a signal booster code to a portal address.
//
// Usage:
//
//	booster2portal HUKYA:046A:0081:0D6D
package main

import (
	"os"

	"nmskit/internal/cli"
)

func main() {
	os.Exit(cli.Booster2Portal(os.Args[1:], cli.StdStreams()))
}
