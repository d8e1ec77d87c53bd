package registry

import (
	"errors"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	Register("test-block", "OO\nOO")

	if !Exists("test-block") {
		t.Fatal("registered pattern should exist")
	}

	p, err := Lookup("test-block")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if p.Name != "test-block" {
		t.Errorf("unnamed pattern should take its id as name, got %q", p.Name)
	}
	if len(p.Cells) != 4 || p.Width != 2 || p.Height != 2 {
		t.Errorf("unexpected pattern %+v", p)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("no-such-pattern")
	if !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("expected ErrUnknownPattern, got %v", err)
	}
	if Exists("no-such-pattern") {
		t.Error("Exists should be false for unknown ids")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "O")
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate id")
		}
	}()
	Register("test-dup", "O")
}

func TestRegisterEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty pattern")
		}
	}()
	Register("test-empty", "...")
}

func TestListSorted(t *testing.T) {
	Register("test-z", "!Name: Zed\nO")
	Register("test-a", "O.O")

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	for _, info := range list {
		if info.ID == "test-z" && info.Name != "Zed" {
			t.Errorf("expected name Zed, got %q", info.Name)
		}
		if info.ID == "test-a" && (info.Width != 3 || info.Cells != 2) {
			t.Errorf("unexpected info %+v", info)
		}
	}
}
