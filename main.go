package main

import "github.com/revelio-tools/revelio/cmd"

func main() {
	cmd.Execute()
}
