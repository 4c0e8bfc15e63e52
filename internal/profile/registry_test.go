package profile

// registry_test.go — Tests for registration, ordering, and iteration.

import (
	"errors"
	"testing"
)

func mustRegistry(t *testing.T, defs []Profile) *Registry {
	t.Helper()
	r, err := NewRegistry(defs)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r
}

func namedProfile(name string) Profile {
	p := validProfile()
	p.Name = name
	return p
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestRegister_PreservesInsertionOrder(t *testing.T) {
	names := []string{"charlie", "alpha", "bravo"}
	r := &Registry{}
	for _, n := range names {
		if err := r.Register(namedProfile(n)); err != nil {
			t.Fatalf("Register(%q): %v", n, err)
		}
	}
	got := r.Names()
	if len(got) != len(names) {
		t.Fatalf("Names() len = %d, want %d", len(got), len(names))
	}
	for i, n := range names {
		if got[i] != n {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], n)
		}
	}
}

func TestRegister_DuplicateName(t *testing.T) {
	r := &Registry{}
	if err := r.Register(namedProfile("aztec")); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := r.Register(namedProfile("aztec"))
	if err == nil {
		t.Fatal("duplicate name accepted")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Field != "Name" {
		t.Errorf("Field = %q, want Name", verr.Field)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d after rejected duplicate, want 1", r.Len())
	}
}

func TestRegister_InvalidProfileNotAdded(t *testing.T) {
	r := &Registry{}
	p := validProfile()
	p.PrivacyStrength = 11
	if err := r.Register(p); err == nil {
		t.Fatal("out-of-range profile accepted")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after rejected profile, want 0", r.Len())
	}
	if _, ok := r.Get(p.Name); ok {
		t.Error("rejected profile retrievable via Get")
	}
}

func TestNewRegistry_FailsFast(t *testing.T) {
	bad := namedProfile("bad")
	bad.VerificationCost = -1
	_, err := NewRegistry([]Profile{namedProfile("ok"), bad, namedProfile("never")})
	if err == nil {
		t.Fatal("NewRegistry accepted an invalid definition")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Profile != "bad" {
		t.Errorf("Profile = %q, want bad", verr.Profile)
	}
}

// ---------------------------------------------------------------------------
// All
// ---------------------------------------------------------------------------

func TestAll_Restartable(t *testing.T) {
	r := mustRegistry(t, []Profile{namedProfile("a"), namedProfile("b"), namedProfile("c")})
	seq := r.All()
	for pass := 0; pass < 2; pass++ {
		var got []string
		for p := range seq {
			got = append(got, p.Name)
		}
		want := []string{"a", "b", "c"}
		if len(got) != len(want) {
			t.Fatalf("pass %d: yielded %d profiles, want %d", pass, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("pass %d: got[%d] = %q, want %q", pass, i, got[i], want[i])
			}
		}
	}
}

func TestAll_EarlyBreak(t *testing.T) {
	r := mustRegistry(t, []Profile{namedProfile("a"), namedProfile("b"), namedProfile("c")})
	count := 0
	for range r.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("iterated %d profiles after break at 2", count)
	}
}

func TestAll_EmptyRegistry(t *testing.T) {
	r := &Registry{}
	for p := range r.All() {
		t.Errorf("empty registry yielded %q", p.Name)
	}
}

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

func TestGet(t *testing.T) {
	r := mustRegistry(t, []Profile{namedProfile("aztec"), namedProfile("zama")})
	p, ok := r.Get("zama")
	if !ok {
		t.Fatal("Get(zama) not found")
	}
	if p.Name != "zama" {
		t.Errorf("Get(zama).Name = %q", p.Name)
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) reported found")
	}
}
