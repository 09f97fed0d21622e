package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "localstore.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := s.SetJSON("test-key", record{Name: "acme", Count: 3}); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got record
	ok, err := s.GetJSON("test-key", &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Name != "acme" || got.Count != 3 {
		t.Errorf("got %+v", got)
	}
}

func TestLocalStoreMissingKey(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "localstore.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	var v string
	ok, err := s.GetJSON("nope", &v)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("missing key reported as present")
	}
}

func TestLocalStoreReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "localstore.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.SetString(KeyDarkMode, "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetJSON(KeyClients, []string{"a", "b"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	// A fresh handle sees what the first one wrote
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	dark, ok, err := s2.GetString(KeyDarkMode)
	if err != nil || !ok || dark != "true" {
		t.Errorf("darkMode after reload = %q ok=%v err=%v", dark, ok, err)
	}
	var clients []string
	if ok, _ := s2.GetJSON(KeyClients, &clients); !ok || len(clients) != 2 {
		t.Errorf("clients after reload = %v", clients)
	}
}

func TestLocalStoreRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "localstore.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.SetString(KeyToken, "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Remove(KeyToken); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := s.GetString(KeyToken); ok {
		t.Error("removed key still present")
	}

	// Removing an absent key is a no-op
	if err := s.Remove("never-set"); err != nil {
		t.Errorf("remove absent key: %v", err)
	}
}

func TestLocalStoreOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "localstore.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open nonexistent: %v", err)
	}
	// First write creates the directory and file
	if err := s.SetString("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestLocalStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "localstore.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("expected error for corrupt file")
	}
}
