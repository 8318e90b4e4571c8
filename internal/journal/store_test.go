package journal_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"p2mark/internal/journal"
)

func openStore(t *testing.T) (*journal.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "journal.db")
	store, err := journal.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestRecordAndRun(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	first, err := store.Record(ctx, journal.Entry{
		RunID: "run-1", Mode: "write", ContentsDir: "/card/CONTENTS",
		Clip: "0001AB.XML", Sidecar: "0001AB.XMP", Markers: 2, Outcome: journal.OutcomeWritten,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if first.ID == 0 || first.RecordedAt.IsZero() {
		t.Fatalf("expected id and timestamp to be assigned: %+v", first)
	}
	if _, err := store.Record(ctx, journal.Entry{
		RunID: "run-1", Mode: "write", ContentsDir: "/card/CONTENTS",
		Clip: "0002AB.XML", Sidecar: "0002AB.XMP", Outcome: journal.OutcomeFailed,
		ErrorKind: "conflict", Error: "XMP file already has markers",
	}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if _, err := store.Record(ctx, journal.Entry{RunID: "run-2", Mode: "list", ContentsDir: "/card/CONTENTS", Clip: "0001AB.XML", Outcome: journal.OutcomeListed, Markers: 2}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := store.Run(ctx, "run-1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Clip != "0001AB.XML" || entries[0].Markers != 2 || entries[0].Sidecar != "0001AB.XMP" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Outcome != journal.OutcomeFailed || entries[1].ErrorKind != "conflict" || entries[1].Error == "" {
		t.Fatalf("unexpected failed entry: %+v", entries[1])
	}
	if !entries[0].RecordedAt.Equal(first.RecordedAt) {
		t.Fatalf("timestamp changed on round trip: %v vs %v", entries[0].RecordedAt, first.RecordedAt)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, clip := range []string{"A.XML", "B.XML", "C.XML"} {
		if _, err := store.Record(ctx, journal.Entry{
			RunID: "run", Mode: "list", ContentsDir: "/c", Clip: clip,
			Outcome: journal.OutcomeListed, RecordedAt: base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Clip != "C.XML" || entries[1].Clip != "B.XML" {
		t.Fatalf("unexpected recent entries: %+v", entries)
	}
	if entries[0].Sidecar != "" || entries[0].Error != "" {
		t.Fatalf("null columns should read back empty: %+v", entries[0])
	}
}

func TestOpenExistingDatabase(t *testing.T) {
	store, path := openStore(t)
	if _, err := store.Record(context.Background(), journal.Entry{RunID: "r", Mode: "write", ContentsDir: "/c", Clip: "A.XML", Outcome: journal.OutcomeNoMarkers}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := journal.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	entries, err := reopened.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected entry to survive reopen, got %d", len(entries))
	}
}

func TestOpenRejectsOtherSchemaVersion(t *testing.T) {
	store, path := openStore(t)
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	_ = db.Close()

	_, err = journal.Open(context.Background(), path)
	if !errors.Is(err, journal.ErrSchemaMismatch) {
		t.Fatalf("expected schema mismatch, got %v", err)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := journal.Open(context.Background(), " "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
