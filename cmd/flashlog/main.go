package main

import "go.flashlog/internal/cli"

func main() {
	cli.Execute()
}
