package main

import (
	"github.com/andrescamacho/intopia-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
