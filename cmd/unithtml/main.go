package main

import (
	"os"

	"github.com/goliatone/go-unithtml/internal/cli"
)

var version = "dev"

func main() {
	cli.Version = version
	os.Exit(cli.Execute(cli.NewRootCommand()))
}
