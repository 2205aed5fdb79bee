package main

import "github.com/evanfield/replaytag/internal/cli"

func main() {
	cli.Execute()
}
