package validation

import "testing"

func TestRequired(t *testing.T) {
	v := make(Violations)
	Required("name", "  ", v)
	Required("email", "a@b.c", v)
	if v["name"] != "required" {
		t.Fatalf("expected name required, got %v", v)
	}
	if _, ok := v["email"]; ok {
		t.Fatalf("email should pass, got %v", v)
	}
}
