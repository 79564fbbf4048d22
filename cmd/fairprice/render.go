package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"
)

var (
	plain   = flag.Bool("plain", false, "print raw Markdown instead of rendering it for the terminal")
	verbose = flag.Bool("v", false, "log debug details")

	logger zerolog.Logger
)

func setupLogger() {
	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// printMarkdown renders md for the terminal, or prints it as is with -plain
func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		logger.Debug().Err(err).Msg("terminal renderer unavailable")
		fmt.Print(md)
		return
	}

	out, err := renderer.Render(md)
	if err != nil {
		logger.Debug().Err(err).Msg("failed to render markdown")
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
