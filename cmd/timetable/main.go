package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/MaksLuk/Diploma/internal/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	cli := &commandLine{apiURL: cfg.APIURL, out: os.Stdout}
	if err := cli.run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintln(os.Stderr, "❌", err)
		}
		os.Exit(1)
	}
}
