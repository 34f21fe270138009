// portal2booster converts a portal address to a signal booster code.
//
// Usage:
//
//	portal2booster 00380256EC6B
//	portal2booster -s '|' 00380256EC6B
//	portal2booster -g 00380256EC6B   # galactic coordinates
package main

import (
	"os"

	"nmskit/internal/cli"
)

func main() {
	os.Exit(cli.Portal2Booster(os.Args[1:], cli.StdStreams()))
}
