package main

import (
	"os"

	"cdb/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
