package main

import (
	"context"
	"fmt"
	"os"

	"worklog/internal/cli"
)

func main() {
	root := cli.NewRootCommand()

	if err := root.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.NewErrorHandler(nil).Message(err))
		os.Exit(1)
	}
}
