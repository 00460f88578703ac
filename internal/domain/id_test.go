package domain

import "testing"

func TestParseID(t *testing.T) {
	valid, err := ParseID("A1b2C3d4E5f6G7h8I9j0K_")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid.Valid() {
		t.Fatalf("Valid() returned false for a valid id")
	}

	cases := []string{"", "short", "A1b2C3d4E5f6G7h8I9j0K+", "A1b2C3d4E5f6G7h8I9j0K_x", "A1b2C3d4E5f6G7h8I9j0K="}
	for _, c := range cases {
		if _, err := ParseID(c); err == nil {
			t.Errorf("expected error for %q", c)
		}
	}
}

func TestNewIDUniqueAndURLSafe(t *testing.T) {
	const n = 10000
	unique := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id, err := NewID()
		if err != nil {
			t.Fatalf("NewID error: %v", err)
		}
		s := id.String()
		if len(s) != idLen {
			t.Fatalf("id length unexpected: %d", len(s))
		}
		if !id.Valid() {
			t.Fatalf("generated id invalid: %s", id)
		}
		for _, c := range s {
			ok := c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '-' || c == '_'
			if !ok {
				t.Fatalf("id contains non-url-safe char: %s", s)
			}
		}
		if _, exists := unique[s]; exists {
			t.Fatalf("duplicate id generated: %s", s)
		}
		unique[s] = struct{}{}
	}
	if len(unique) != n {
		t.Fatalf("expected %d unique ids, got %d", n, len(unique))
	}
}

func TestSecretIDValidMethod(t *testing.T) {
	id := SecretID("A1b2C3d4E5f6G7h8I9j0K_")
	if !id.Valid() {
		t.Fatalf("expected id to be valid")
	}
	bad := SecretID("A1b2C3d4E5f6G7h8I9j0K!")
	if bad.Valid() {
		t.Fatalf("expected invalid id")
	}
}
