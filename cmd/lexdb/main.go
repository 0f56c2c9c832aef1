// Command lexdb loads the lexical resource files, serves lookups over HTTP
// and exports the index to PostgreSQL.
package main

import (
	"os"

	"github.com/heartmarshall/lexdb/cmd/lexdb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
