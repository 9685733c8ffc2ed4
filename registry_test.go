package gizmo

import (
	"slices"
	"strings"
	"testing"
)

func nopFactory(int, int) Backend {
	return BackendFunc(func(Primitive) {})
}

func TestRegister(t *testing.T) {
	const name = "test-register"
	t.Cleanup(func() { Unregister(name) })

	Register(name, nopFactory)
	if !IsRegistered(name) {
		t.Fatalf("IsRegistered(%q) = false", name)
	}
	if !slices.Contains(Backends(), name) {
		t.Errorf("Backends() = %v, missing %q", Backends(), name)
	}

	b, err := NewBackend(name, 10, 10)
	if err != nil || b == nil {
		t.Fatalf("NewBackend() = %v, %v", b, err)
	}
}

func TestRegisterPanics(t *testing.T) {
	const name = "test-dup"
	t.Cleanup(func() { Unregister(name) })

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil factory", func() { Register("test-nil", nil) }},
		{"duplicate", func() {
			Register(name, nopFactory)
			Register(name, nopFactory)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestNewBackendUnknown(t *testing.T) {
	_, err := NewBackend("does-not-exist", 1, 1)
	if err == nil || !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("NewBackend(unknown) = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustBackend(unknown) did not panic")
		}
	}()
	MustBackend("does-not-exist", 1, 1)
}

func TestBackendsSorted(t *testing.T) {
	names := []string{"test-c", "test-a", "test-b"}
	for _, n := range names {
		Register(n, nopFactory)
	}
	t.Cleanup(func() {
		for _, n := range names {
			Unregister(n)
		}
	})
	if got := Backends(); !slices.IsSorted(got) {
		t.Errorf("Backends() = %v, not sorted", got)
	}
}
