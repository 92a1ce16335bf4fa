package main

import "github.com/ncmink/biebie-cli/cmd"

func main() {
	cmd.Execute()
}
