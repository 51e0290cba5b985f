// Command uirt is the runtime layout toolchain: convert XML layouts to
// the JSON document form and inflate documents against the stock widget
// catalog for inspection.
package main

import (
	"fmt"
	"os"

	"github.com/A0ks9/XmlRuntime-sub001/cmd/uirt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
