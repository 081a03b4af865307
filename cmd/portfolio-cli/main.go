package main

import "github.com/Leonard-ssj/portfolio/cmd/portfolio-cli/cmd"

func main() {
	cmd.Execute()
}
