package main

import "shutter/cmd"

func main() {
	cmd.Execute()
}
