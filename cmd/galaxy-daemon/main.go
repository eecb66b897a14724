package main

import (
	"github.com/cryptixcoder/galaxyofdrones-online/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
