// Command deckctl inspects catalog files and imports them into the
// Armoury API database.
package main

import (
	"os"

	"github.com/phrazzld/armoury-api/cmd/deckctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
