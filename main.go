package main

import "outfitter/cmd"

func main() {
	cmd.Execute()
}
