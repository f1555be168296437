package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/goliatone/go-contentkit/domain"
	"github.com/goliatone/go-contentkit/internal/validation"
)

func main() {
	if err := runValidate(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("catalog validate: %v", err)
	}
}

// runValidate walks a catalog content tree and validates every document
// against the document schema. Documents are expected at
// <content-dir>/<locale>/<domain>.json.
func runValidate(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("catalog-validate", flag.ContinueOnError)
	contentDir := flags.String("content-dir", "content", "Path to the catalog content root")
	pattern := flags.String("pattern", "*.json", "Glob pattern applied when discovering documents")
	if err := flags.Parse(args); err != nil {
		return err
	}

	checked := 0
	failed := 0

	walkErr := filepath.WalkDir(*contentDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if ok, matchErr := filepath.Match(*pattern, entry.Name()); matchErr != nil || !ok {
			return matchErr
		}

		rel, relErr := filepath.Rel(*contentDir, path)
		if relErr != nil {
			rel = path
		}

		checked++
		issues := validateDocumentFile(path, entry.Name())
		if len(issues) == 0 {
			fmt.Fprintf(out, "%s: ok\n", rel)
			return nil
		}

		failed++
		for _, issue := range issues {
			fmt.Fprintf(out, "%s: %s\n", rel, issue)
		}
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("walk content dir: %w", walkErr)
	}

	if checked == 0 {
		return fmt.Errorf("no documents matched %q under %s", *pattern, *contentDir)
	}

	fmt.Fprintf(out, "validated %d documents, %d invalid\n", checked, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, checked)
	}
	return nil
}

func validateDocumentFile(path, name string) []string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("read: %v", err)}
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return []string{fmt.Sprintf("invalid JSON: %v", err)}
	}

	issues := []string{}

	stem := name[:len(name)-len(filepath.Ext(name))]
	if parsed := domain.Parse(stem); !domain.IsKnown(parsed) {
		issues = append(issues, fmt.Sprintf("unknown domain %q", stem))
	}

	if err := validation.ValidateDocument(payload); err != nil {
		details := validation.Issues(err)
		if len(details) == 0 {
			issues = append(issues, err.Error())
		}
		for _, detail := range details {
			issues = append(issues, fmt.Sprintf("%s: %s", detail.Location, detail.Message))
		}
	}

	return issues
}
