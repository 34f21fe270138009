// decode_coords prints every form of one or more coordinate codes together
// with the decoded X, Y, Z, star system and planet.
//
// Usage:
//
//	decode_coords 00380256EC6B HUKYA:046A:0081:0D6D
//	decode_coords -f hex -s galactic < codes.txt
package main

import (
	"os"

	"nmskit/internal/cli"
)

func main() {
	os.Exit(cli.DecodeCoords(os.Args[1:], cli.StdStreams()))
}
