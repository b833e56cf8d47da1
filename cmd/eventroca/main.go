package main

import "eventroca/cmd/eventroca/cmd"

func main() {
	cmd.Execute()
}
