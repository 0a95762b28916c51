package main

import "graphed/cmd"

func main() {
	cmd.Execute()
}
