package main

import (
	"github.com/lifesim/scenario-engine/internal/cli"
)

func main() {
	cli.Execute()
}
