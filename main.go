package main

import "github.com/liftover/liftover/cmd"

func main() {
	cmd.Execute()
}
