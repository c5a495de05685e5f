package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/teranos/autodeconstruct/cmd/autodeconstruct/commands"
	"github.com/teranos/autodeconstruct/errors"
)

// Exit codes
const (
	exitStale = 1
	exitError = 2
)

func main() {
	if err := commands.Execute(context.Background()); err != nil {
		pterm.Error.Println(err.Error())
		for _, hint := range errors.GetAllHints(err) {
			pterm.Info.Println(hint)
		}

		if errors.IsStaleArtifactError(err) {
			os.Exit(exitStale)
		}
		os.Exit(exitError)
	}
}
