package progress

import (
	"errors"
	"testing"
)

// memKV is an in-memory KV for tests.
type memKV struct {
	data    map[string]string
	failGet bool
	failSet bool
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(key string) (string, bool, error) {
	if m.failGet {
		return "", false, errors.New("storage unavailable")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key, value string) error {
	if m.failSet {
		return errors.New("quota exceeded")
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func testRecords() []Record {
	return []Record{
		{Question: "Capital of France?", UserAnswer: "Paris", CorrectAnswer: "Paris", IsCorrect: true},
		{Question: "2 + 2?", UserAnswer: "5", CorrectAnswer: "4", IsCorrect: false},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := NewStore(newMemKV())
	want := testRecords()

	if err := store.Save(2, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if snap == nil {
		t.Fatal("Load returned nil snapshot after Save")
	}
	if snap.Index != 2 {
		t.Errorf("Index = %d, want 2", snap.Index)
	}
	if len(snap.Records) != len(want) {
		t.Fatalf("got %d records, want %d", len(snap.Records), len(want))
	}
	for i := range want {
		if snap.Records[i] != want[i] {
			t.Errorf("Records[%d] = %+v, want %+v", i, snap.Records[i], want[i])
		}
	}
}

func TestLoad_EmptyStorage(t *testing.T) {
	store := NewStore(newMemKV())

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if snap != nil {
		t.Errorf("Load on empty storage = %+v, want nil", snap)
	}
}

func TestLoad_CorruptSlots(t *testing.T) {
	cases := []struct {
		name    string
		index   string
		records string
	}{
		{"non-numeric index", "abc", "[]"},
		{"negative index", "-1", "[]"},
		{"malformed records", "1", "{not json"},
		{"records not a list", "1", `{"q": "x"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := newMemKV()
			kv.data[KeyIndex] = tc.index
			kv.data[KeyRecords] = tc.records

			snap, err := NewStore(kv).Load()
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if snap != nil {
				t.Errorf("Load on corrupt storage = %+v, want nil", snap)
			}
		})
	}
}

func TestLoad_OneSlotMissing(t *testing.T) {
	kv := newMemKV()
	kv.data[KeyIndex] = "3"

	snap, err := NewStore(kv).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if snap != nil {
		t.Errorf("Load with missing records slot = %+v, want nil", snap)
	}
}

func TestSave_StorageFailure(t *testing.T) {
	kv := newMemKV()
	kv.failSet = true

	if err := NewStore(kv).Save(1, testRecords()); err == nil {
		t.Error("expected error when storage rejects writes")
	}
}

func TestLoad_StorageFailure(t *testing.T) {
	kv := newMemKV()
	kv.data[KeyIndex] = "1"
	kv.failGet = true

	if _, err := NewStore(kv).Load(); err == nil {
		t.Error("expected error when storage rejects reads")
	}
}

func TestClear_RemovesBothSlots(t *testing.T) {
	kv := newMemKV()
	store := NewStore(kv)

	if err := store.Save(1, testRecords()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	if _, ok := kv.data[KeyIndex]; ok {
		t.Error("index slot still present after Clear")
	}
	if _, ok := kv.data[KeyRecords]; ok {
		t.Error("records slot still present after Clear")
	}
}

func TestSave_NilRecordsEncodesEmptyList(t *testing.T) {
	kv := newMemKV()
	store := NewStore(kv)

	if err := store.Save(0, nil); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := kv.data[KeyRecords]; got != "[]" {
		t.Errorf("records slot = %q, want %q", got, "[]")
	}
}
