package main

import (
	"os"

	"github.com/dshills/herald/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
