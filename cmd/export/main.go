package main

import (
	"context"
	"fmt"
	"os"

	"showcase.dev/internal/content"
	"showcase.dev/internal/storage/sqlite"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <db-path> <content-file>\n", os.Args[0])
		os.Exit(1)
	}
	dbPath, contentPath := os.Args[1], os.Args[2]

	format, err := content.FormatOf(contentPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	section, err := store.LoadSection(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load section: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	data, err := content.Encode(section, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR encoding %s: %v\n", format, err)
		store.Close()
		os.Exit(1)
	}

	if err := os.WriteFile(contentPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR writing file: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("Exported %d projects to %s\n", len(section.Projects), contentPath)
	fmt.Println("Done!")
}
