// Command cssfmt parses CSS stylesheets and prints them in canonical form.
package main

import (
	"os"

	"github.com/npillmayer/csskit/cmd/cssfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
