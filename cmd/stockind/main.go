package main

import (
	"github.com/c9s/stockind/pkg/cmd"
)

func main() {
	cmd.Execute()
}
