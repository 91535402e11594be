package specdata

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadColumnsTransposes(t *testing.T) {
	path := writeTemp(t, "1,2,3\n4,5,6\n")
	cols, err := LoadColumns(path, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]float32{{1, 4}, {2, 5}, {3, 6}}
	for c := range want {
		for r := range want[c] {
			if cols[c][r] != want[c][r] {
				t.Fatalf("cols[%d][%d] = %v, want %v", c, r, cols[c][r], want[c][r])
			}
		}
	}
}

func TestLoadColumnsRejectsWrongWidth(t *testing.T) {
	path := writeTemp(t, "1,2,3\n4,5,6\n")
	if _, err := LoadColumns(path, 2); err == nil {
		t.Fatal("expected error for column-count mismatch")
	}
}

func TestLoadColumnsRejectsRaggedRows(t *testing.T) {
	path := writeTemp(t, "1,2,3\n4,5\n")
	if _, err := LoadColumns(path, 0); err == nil {
		t.Fatal("expected error for ragged rows")
	}
}

func TestLoadColumnsMissingFile(t *testing.T) {
	if _, err := LoadColumns("/no/such/file.csv", 0); err == nil {
		t.Fatal("expected error for missing file")
	}
}
