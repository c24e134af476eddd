package main

import (
	"os"

	"github.com/msomdec/yatube/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
