package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteContentTree materialises a locale-keyed content tree under a temp
// directory. Keys are slash-separated paths relative to the returned root.
func WriteContentTree(tb testing.TB, files map[string]string) string {
	tb.Helper()

	root := tb.TempDir()
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			tb.Fatalf("create content dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			tb.Fatalf("write content file: %v", err)
		}
	}
	return root
}
