// Package main implements vocabtool, the maintenance CLI for the
// vocabulary catalog: it lints catalog YAML files and converts curator
// spreadsheets into them.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
