package main

import (
	"github.com/alecthomas/kong"

	"marwood.io/WhiskeyVault/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Whiskey Vault"), kong.Description("WhiskeyVault is a personal whiskey collection tracker."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
