package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/macfix/internal/domain"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return &FileStore{path: filepath.Join(t.TempDir(), "history.jsonl")}
}

func saveSample(t *testing.T, store *FileStore, action string, status domain.OutcomeStatus, detail string) {
	t.Helper()
	err := store.Save(domain.ActionRecord{
		ID:        action + "-id",
		Timestamp: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		Action:    action,
		Status:    status,
		Detail:    detail,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestFileStoreRecordsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	saveSample(t, store, domain.ActionFlushDNS, domain.OutcomeSuccess, "flushed: dscacheutil, mDNSResponder")
	saveSample(t, store, domain.ActionRenewDHCP, domain.OutcomeWarning, "partial: renewed lease on en0; failed en1")
	saveSample(t, store, domain.ActionCleanSystem, domain.OutcomeCancelled, "cancelled by user")

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, rec := range records {
		got = append(got, rec.Action)
	}
	want := []string{domain.ActionCleanSystem, domain.ActionRenewDHCP, domain.ActionFlushDNS}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("record order mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStoreSearchAndLimit(t *testing.T) {
	store := newTestStore(t)
	saveSample(t, store, domain.ActionFlushDNS, domain.OutcomeSuccess, "flushed")
	saveSample(t, store, domain.ActionRenewDHCP, domain.OutcomeSuccess, "renewed lease on en0")
	saveSample(t, store, domain.ActionRenewDHCP, domain.OutcomeError, "renewed lease on nothing")

	records, err := store.Records(1, "renew")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Status != domain.OutcomeError {
		t.Fatalf("records = %+v, want only the newest renew-dhcp entry", records)
	}
}

func TestFileStoreClearAndEmptyReads(t *testing.T) {
	store := newTestStore(t)

	// Reading before anything was saved is not an error.
	records, err := store.Records(0, "")
	if err != nil || records != nil {
		t.Fatalf("Records on empty store = %v, %v, want nil, nil", records, err)
	}

	saveSample(t, store, domain.ActionFlushDNS, domain.OutcomeSuccess, "")
	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on a missing file should be a no-op, got %v", err)
	}

	records, err = store.Records(0, "")
	if err != nil || len(records) != 0 {
		t.Fatalf("Records after Clear = %v, %v, want empty", records, err)
	}
}

func TestFileStoreExportJSON(t *testing.T) {
	store := newTestStore(t)
	saveSample(t, store, domain.ActionRestartUI, domain.OutcomeSuccess, "restarted: Dock, Finder, SystemUIServer")

	dest := filepath.Join(t.TempDir(), "export.jsonl")
	if err := store.ExportJSON(dest); err != nil {
		t.Fatal(err)
	}

	exported := &FileStore{path: dest}
	records, err := exported.Records(0, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Action != domain.ActionRestartUI {
		t.Fatalf("exported records = %+v, want the saved restart-ui entry", records)
	}
}
