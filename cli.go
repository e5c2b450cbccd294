//go:build cli
// +build cli

package main

import (
	_ "pirex.GO/custom"

	"pirex.GO/cmd"
	"pirex.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
