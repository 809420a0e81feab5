// Command particles-term runs the particle background in a terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iburimskiy/particles-background/internal/config"
	"github.com/iburimskiy/particles-background/internal/term"
)

func main() {
	log.SetPrefix("particles-term: ")

	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	screen, err := term.Open()
	if err != nil {
		// Nothing to draw on: report and leave without starting the loop.
		log.Print(err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = term.New(screen, cfg).Run(ctx)
	stop()
	screen.Fini()

	if err != nil {
		log.Fatalf("run: %v", err)
	}
}
