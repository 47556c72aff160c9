package main

import (
	"context"
	"fmt"
	"os"
)

// Version is set during build using ldflags
var Version = "dev"

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
