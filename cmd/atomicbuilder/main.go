package main

import "github.com/frherrer/atomic-builder/internal/cli"

func main() {
	cli.Main()
}
