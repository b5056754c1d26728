// pkg/registry/registry_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the generic registry

package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/wifiprof/pkg/errors"
)

type factory func() string

func TestRegisterAndGet(t *testing.T) {
	reg := New[factory]()

	if err := reg.Register("file", func() string { return "file" }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, err := reg.Get("file")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got() != "file" {
		t.Errorf("Get() returned the wrong item")
	}

	if !reg.Has("file") || reg.Has("nmcli") {
		t.Error("Has() mismatch")
	}
}

func TestRegisterErrors(t *testing.T) {
	reg := New[int]()
	_ = reg.Register("a", 1)

	if err := reg.Register("", 2); !errors.IsErrorCode(err, errors.ErrInvalidInput) {
		t.Errorf("empty name should be ErrInvalidInput, got %v", err)
	}
	if err := reg.Register("a", 3); !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
		t.Errorf("duplicate should be ErrAlreadyExists, got %v", err)
	}
}

func TestGetMissingListsKnownNames(t *testing.T) {
	reg := New[int]()
	_ = reg.Register("wpa_supplicant", 1)
	_ = reg.Register("file", 2)

	_, err := reg.Get("nope")
	if !errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
	known, _ := errors.GetErrorDetails(err)["known"].([]string)
	if fmt.Sprint(known) != "[file wpa_supplicant]" {
		t.Errorf("known = %v", known)
	}
}

func TestList(t *testing.T) {
	reg := New[int]()
	for i, name := range []string{"c", "a", "b"} {
		_ = reg.Register(name, i)
	}
	if got := fmt.Sprint(reg.List()); got != "[a b c]" {
		t.Errorf("List() = %s", got)
	}
}

func TestConcurrency(t *testing.T) {
	reg := New[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("item%d", n)
			_ = reg.Register(name, n)
			_, _ = reg.Get(name)
			_ = reg.List()
		}(i)
	}
	wg.Wait()

	if len(reg.List()) != 50 {
		t.Errorf("List() has %d items, want 50", len(reg.List()))
	}
}

func TestMustRegister(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "a", 1)

	defer func() {
		if recover() == nil {
			t.Error("MustRegister() should panic on duplicate")
		}
	}()
	MustRegister(reg, "a", 2)
}
