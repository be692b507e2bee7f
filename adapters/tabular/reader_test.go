package tabular

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "listings.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp CSV: %v", err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeTempCSV(t, "name,price,beds\n\"Loft, downtown\",$150,2\nStudio,90,1\n")

	table, err := NewDataReader(path).Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(table.Headers) != 3 {
		t.Errorf("expected 3 headers, got %d", len(table.Headers))
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0]["name"] != "Loft, downtown" {
		t.Errorf("quoted comma not preserved: %q", table.Rows[0]["name"])
	}
	if table.Rows[1]["beds"] != "1" {
		t.Errorf("expected beds=1, got %q", table.Rows[1]["beds"])
	}
}

func TestReadCSVShortRows(t *testing.T) {
	path := writeTempCSV(t, "name,price,beds\nStudio,90\n")

	table, err := NewDataReader(path).Read()
	if err != nil {
		t.Fatalf("Read failed on ragged row: %v", err)
	}
	if table.Rows[0]["beds"] != "" {
		t.Errorf("missing trailing cell should be empty, got %q", table.Rows[0]["beds"])
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewDataReader("/nonexistent/listings.csv").Read()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadHeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "name,price,beds\n")

	_, err := NewDataReader(path).Read()
	if err == nil {
		t.Fatal("expected error for file without data rows")
	}
}
