package main

import "trecsearch/internal/cli"

func main() {
	cli.Execute()
}
