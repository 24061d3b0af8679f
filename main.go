package main

import "tableside/cmd"

func main() {
	cmd.Execute()
}
