package util

import (
	"strconv"
	"strings"
	"testing"
)

func TestNewIDFormat(t *testing.T) {
	id := NewID("course")
	parts := strings.Split(id, "_")
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts in %q, got %d", id, len(parts))
	}
	if parts[0] != "course" {
		t.Fatalf("expected prefix course, got %q", parts[0])
	}
	if _, err := strconv.ParseInt(parts[1], 10, 64); err != nil {
		t.Fatalf("timestamp part %q is not numeric: %v", parts[1], err)
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil {
		t.Fatalf("random part %q is not numeric: %v", parts[2], err)
	}
	if n < 0 || n >= 100000 {
		t.Fatalf("random part %d out of range", n)
	}
}
