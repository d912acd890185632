package main

import "github.com/devicelab-dev/swipe-geometry/pkg/cli"

func main() {
	cli.Execute()
}
