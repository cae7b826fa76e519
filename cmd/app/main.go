package main

import (
	"os"

	"github.com/Aftab0008/car-end/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
