package main

import "github.com/LukeCarrier/signin/cmd/signin-cli/cmd"

func main() {
	cmd.Execute()
}
