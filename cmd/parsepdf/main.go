package main

// Parse a LinkedIn profile PDF without the server:
//   go run ./cmd/parsepdf profile.pdf

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/baehrendtz/FreeResume-sub000/internal/linkedin"
	"github.com/baehrendtz/FreeResume-sub000/internal/pdftext"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: parsepdf <file.pdf>")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("read file: %v", err)
	}

	pages, err := pdftext.ExtractPages(data)
	if err != nil {
		log.Fatalf("extract text: %v", err)
	}

	model := linkedin.Parse(pages)

	out, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		log.Fatalf("encode model: %v", err)
	}
	fmt.Println(string(out))
}
