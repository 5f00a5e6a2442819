package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/WHOIGit/nsf-oce-topics/internal/models"
)

func TestChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")

	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// sha256("hello")
	const want = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

	got, err := Checksum(path)
	if err != nil {
		t.Fatalf("Checksum failed: %v", err)
	}

	if got != want {
		t.Errorf("Checksum = %s, want %s", got, want)
	}
}

func TestChecksum_MissingFile(t *testing.T) {
	if _, err := Checksum("/nonexistent/out.bin"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestManifest_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "awards.manifest.json")

	want := &models.Manifest{
		InputFile:  "awards.csv",
		CPIFile:    "cpi.xlsx",
		OutputFile: "awards.parquet",
		Checksum:   "abc123",
		BaseYear:   2018,
		Counts: models.StageCounts{
			Read:    100,
			Merged:  10,
			Written: 90,
		},
		ProcessedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Status:      models.StatusCompleted,
	}

	if err := WriteManifest(path, want); err != nil {
		t.Fatalf("WriteManifest failed: %v", err)
	}

	got, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("ReadManifest failed: %v", err)
	}

	if got.Checksum != want.Checksum {
		t.Errorf("Checksum = %s, want %s", got.Checksum, want.Checksum)
	}

	if got.Counts.Written != 90 {
		t.Errorf("Counts.Written = %d, want 90", got.Counts.Written)
	}

	if !got.ProcessedAt.Equal(want.ProcessedAt) {
		t.Errorf("ProcessedAt = %v, want %v", got.ProcessedAt, want.ProcessedAt)
	}

	if got.Status != models.StatusCompleted {
		t.Errorf("Status = %q, want %q", got.Status, models.StatusCompleted)
	}
}
