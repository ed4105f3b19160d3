package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/homes/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	envFile := flag.String("env", "", "dotenv file to load (optional, defaults to ./.env)")
	homeID := flag.String("home", "", "open the details screen for this home id")
	addHome := flag.Bool("add", false, "open the add-home form")
	flag.Parse()

	if *addHome && *homeID != "" {
		fmt.Fprintf(os.Stderr, "homes: %v\n", errors.New("-add and -home cannot be combined"))
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		EnvFile:    *envFile,
		HomeID:     *homeID,
		AddHome:    *addHome,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "homes: %v\n", err)
		return 1
	}
	return 0
}
