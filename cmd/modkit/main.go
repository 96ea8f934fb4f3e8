package main

import "github.com/papapumpkin/modkit/cmd"

func main() {
	cmd.Execute()
}
