// Command marty is a small CLI for driving Marty the Robot: discover
// robots on the network, send a few motion commands, read the battery.
package main

import (
	"fmt"
	"os"

	"github.com/robotical/go-marty/internal/log"
)

func main() {
	log.Init("info")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
