package main

import (
	"os"

	"github.com/vipcxj/bounded/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
