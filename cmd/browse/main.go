package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"showcase.dev/internal/config"
	"showcase.dev/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	if len(os.Args) > 1 {
		cfg.ContentPath = os.Args[1]
		cfg.DBPath = ""
	}

	// The terminal belongs to the UI; logs only go to a file.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			config.Exitf("log file: %v", err)
		}
		defer f.Close()
		out = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})))

	section, err := cfg.LoadSection(context.Background())
	if err != nil {
		config.Exitf("content: %v", err)
	}

	p := tea.NewProgram(tui.New(section), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		slog.Error("browser exited", "error", err)
		config.Exitf("browse: %v", err)
	}
}
