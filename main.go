package main

import "github.com/nathanhack/hamming74/cmd"

func main() {
	cmd.Execute()
}
