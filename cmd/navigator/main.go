// Command navigator serves the BBW Lizenz-Navigator and exports license reports.
//
// @title BBW Lizenz-Navigator API
// @version 1.0
// @description Tool catalog, access matrix and procurement flows of the BBW Winterthur.
// @host localhost:8080
// @BasePath /
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
