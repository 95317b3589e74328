package main

import "github.com/schemelint/schemelint/internal/cli"

func main() {
	cli.Execute()
}
