package main

import (
	"os"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
