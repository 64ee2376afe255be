package main

import "github.com/gitup-cli/gitup/internal/cli"

func main() {
	cli.Execute()
}
