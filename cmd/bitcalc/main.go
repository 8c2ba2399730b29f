package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bitcalc: %v\n", err)
		os.Exit(1)
	}
}
