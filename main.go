// Package main is the entry point for the multidriver command.
package main

import (
	"github.com/multidriver/multidriver/cmd"
	"github.com/multidriver/multidriver/config"
	"github.com/multidriver/multidriver/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
