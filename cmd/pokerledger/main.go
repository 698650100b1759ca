package main

import "github.com/mcoot/pokerledger/internal/cli"

func main() {
	cli.Execute()
}
