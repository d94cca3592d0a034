package main

import "github.com/itsmostafa/tocgen/cmd"

func main() {
	cmd.Execute()
}
