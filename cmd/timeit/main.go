package main

import "timekit/internal/cli"

func main() {
	cli.Execute()
}
