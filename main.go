package main

import "github.com/aenigma-lab/opsearch/cmd"

func main() {
	cmd.Execute()
}
