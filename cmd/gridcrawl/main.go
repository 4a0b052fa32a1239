package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lixenwraith/gridcrawl/core"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := New().Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "gridcrawl: %v\n", err)
		os.Exit(1)
	}
}
