package main

import (
	"fmt"
	"os"

	"github.com/Red1144/VRChatAppi/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
