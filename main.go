package main

import "github.com/KaramelBytes/flamingo-cli/cmd"

func main() {
	cmd.Execute()
}
