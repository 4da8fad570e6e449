// gromark is a Gromark-style cipher workbench: encrypt, decrypt and
// brute-force texts enciphered with a keyed alphabet and a
// lagged-Fibonacci digit keystream.
package main

import (
	"os"

	"github.com/corey/gromark/cmd/gromark/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
