package db

import (
	"strings"
	"testing"
)

func TestNormalizeDSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "   ", ""},
		{"url untouched", "postgres://u:p@h:5432/db?sslmode=require", "postgres://u:p@h:5432/db?sslmode=require"},
		{"quoted url", `"postgresql://u@h/db"`, "postgresql://u@h/db"},
		{"kv adds sslmode", "host=h  user=u   dbname=db", "host=h user=u dbname=db sslmode=disable"},
		{"kv keeps sslmode", "host=h user=u dbname=db sslmode=require", "host=h user=u dbname=db sslmode=require"},
		{"not a dsn", "garbage", "garbage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDSN(tt.in); got != tt.want {
				t.Errorf("NormalizeDSN(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToURLDSN(t *testing.T) {
	got := ToURLDSN("host=db port=5432 user=app password=pw dbname=pier2 sslmode=disable")
	want := "postgres://app:pw@db:5432/pier2?sslmode=disable"
	if got != want {
		t.Fatalf("ToURLDSN = %q, want %q", got, want)
	}
	if got := ToURLDSN("host=db"); got != "host=db" {
		t.Fatalf("incomplete kv should be returned unchanged, got %q", got)
	}
}

func TestMaskDSN(t *testing.T) {
	for _, dsn := range []string{
		"postgres://app:s3cret@db:5432/pier2",
		"host=db user=app password=s3cret dbname=pier2",
	} {
		if got := MaskDSN(dsn); strings.Contains(got, "s3cret") {
			t.Errorf("MaskDSN(%q) leaked password: %q", dsn, got)
		}
	}
	if got := MaskDSN("pier2.db"); got != "pier2.db" {
		t.Errorf("sqlite path should be unchanged, got %q", got)
	}
}
