package main

import "github.com/govalues/fraction/internal/cli"

func main() {
	cli.Execute()
}
