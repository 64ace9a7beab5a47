package main

import "github.com/aalvaropc/svgstore/internal/cli"

func main() {
	cli.Execute()
}
