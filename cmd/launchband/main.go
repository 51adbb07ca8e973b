package main

import "github.com/team9044/launchband/internal/cli"

func main() {
	cli.Execute()
}
