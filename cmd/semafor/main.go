package main

import (
	"github.com/c9s/semafor/pkg/cmd"
)

func main() {
	cmd.Execute()
}
