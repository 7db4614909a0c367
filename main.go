package main

import "github.com/gaurav-prasanna/pagescope/cmd"

func main() {
	cmd.Execute()
}
