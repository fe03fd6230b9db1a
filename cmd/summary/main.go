package main

import "github.com/jihooni6250/summary/cmd/summary/cmd"

func main() {
	cmd.Execute()
}
