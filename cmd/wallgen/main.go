package main

import "wallgen/internal/cli"

func main() {
	cli.Execute()
}
