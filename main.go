package main

import (
	"github.com/edgeplane/edgeplane/cmd"
)

func main() {
	cmd.Execute()
}
