package main

import "github.com/dotcommander/floatscore/cmd"

func main() {
	cmd.Execute()
}
