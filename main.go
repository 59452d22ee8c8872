package main

import "github.com/Johannes-Berggren/GitRecent/cmd"

func main() {
	cmd.Execute()
}
