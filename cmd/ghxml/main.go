package main

import "github.com/dmeister/py-github/internal/cli"

func main() {
	cli.Execute()
}
