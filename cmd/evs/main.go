package main

import (
	"github.com/mchmarny/evs/pkg/cli"
)

func main() {
	cli.Execute()
}
