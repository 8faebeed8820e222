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
		fmt.Fprintf(os.Stderr, "Usage: %s <content-file> <db-path>\n", os.Args[0])
		os.Exit(1)
	}
	contentPath, dbPath := os.Args[1], os.Args[2]

	fmt.Printf("Reading %s...\n", contentPath)
	section, err := content.LoadFile(contentPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}
	for _, p := range section.Projects {
		fmt.Printf("  %s (%d tags)\n", p.ID, len(p.Tags))
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.SaveSection(context.Background(), section); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save section: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("Imported %d projects into %s\n", len(section.Projects), dbPath)
	fmt.Println("Done!")
}
