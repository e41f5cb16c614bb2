package main

import (
	"fmt"
	"os"

	"github.com/vgn96186/Guru-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
