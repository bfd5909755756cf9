package main

import (
	_ "go.uber.org/automaxprocs"

	"ticket-scan/cmd"
)

func main() {
	cmd.Start()
}
