package main

import "github.com/brandkit/api/cmd"

func main() {
	cmd.Execute()
}
