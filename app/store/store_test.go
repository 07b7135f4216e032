package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"scholarflow/app/models"
)

func TestLoadFallsBackToSeed(t *testing.T) {
	st := New(NewMemoryBackend())

	err := st.View(func(state *models.State) error {
		if len(state.Users) != 3 || len(state.Students) != 25 {
			t.Errorf("seed has %d users and %d students", len(state.Users), len(state.Students))
		}
		if state.UserByEmail("admin@school.com") == nil {
			t.Error("seed admin missing")
		}
		if len(state.AttendanceSessions) != 0 {
			t.Error("seed must have no sessions")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestUpdatePersistsWholeSnapshot(t *testing.T) {
	backend := NewMemoryBackend()
	st := New(backend)

	err := st.Update(func(state *models.State) error {
		state.Students = append(state.Students, &models.Student{ID: "sx", Name: "New Kid"})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	// a fresh store over the same backend sees the write
	again := New(backend)
	_ = again.View(func(state *models.State) error {
		if state.StudentByID("sx") == nil {
			t.Error("update not persisted")
		}
		if len(state.Students) != 26 {
			t.Errorf("student count = %d, want 26", len(state.Students))
		}
		return nil
	})
}

func TestUpdateFailureWritesNothing(t *testing.T) {
	backend := NewMemoryBackend()
	st := New(backend)

	if err := st.Update(func(state *models.State) error { return nil }); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := st.Update(func(state *models.State) error {
		state.Students = nil
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}

	_ = st.View(func(state *models.State) error {
		if len(state.Students) != 25 {
			t.Error("failed update mutated persisted state")
		}
		return nil
	})
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	backend, err := NewFileBackend(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, present, err := backend.Load(); err != nil || present {
		t.Fatalf("fresh file backend: present=%v err=%v", present, err)
	}

	if err := backend.Save([]byte(`{"users":[]}`)); err != nil {
		t.Fatal(err)
	}
	data, present, err := backend.Load()
	if err != nil || !present {
		t.Fatalf("load after save: present=%v err=%v", present, err)
	}
	if string(data) != `{"users":[]}` {
		t.Errorf("round trip mismatch: %s", data)
	}

	// no temp file left behind
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}

func TestStoreOverFileBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	backend, err := NewFileBackend(path)
	if err != nil {
		t.Fatal(err)
	}
	st := New(backend)

	err = st.Update(func(state *models.State) error {
		state.Classes = append(state.Classes, &models.ClassGroup{ID: "c9", Name: "Detention", GradeLevel: "Mixed"})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	reopened, err := NewFileBackend(path)
	if err != nil {
		t.Fatal(err)
	}
	_ = New(reopened).View(func(state *models.State) error {
		if state.ClassByID("c9") == nil {
			t.Error("class not found after reopen")
		}
		return nil
	})
}
