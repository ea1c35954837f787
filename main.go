package main

import "github.com/mj1618/a11y-cli/cmd"

func main() {
	cmd.Execute()
}
