package main

import "github.com/shimf/uidrive/cmd"

func main() {
	cmd.Execute()
}
