// xyz prints the XXXX:YYYY:ZZZZ point of any coordinate code.
package main

import (
	"os"

	"nmskit/internal/cli"
)

func main() {
	os.Exit(cli.XYZ(os.Args[1:], cli.StdStreams()))
}
