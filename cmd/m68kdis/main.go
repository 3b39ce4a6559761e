package main

import (
	"os"

	"github.com/go-delve/m68kdis/cmd/m68kdis/cmds"
	"github.com/go-delve/m68kdis/pkg/config"
)

func main() {
	if err := cmds.New(config.LoadConfig()).Execute(); err != nil {
		os.Exit(1)
	}
}
