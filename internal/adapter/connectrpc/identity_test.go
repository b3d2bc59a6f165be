package connectrpc

import (
	"context"
	"testing"
)

func TestParseUserID(t *testing.T) {
	cases := map[string]int64{" 12 ": 12, "1": 1}
	for raw, want := range cases {
		got, err := parseUserID(raw)
		if err != nil || got != want {
			t.Fatalf("parseUserID(%q) = %d, %v", raw, got, err)
		}
	}
	for _, raw := range []string{"", "x", "0", "-1", "1.5"} {
		if _, err := parseUserID(raw); err == nil {
			t.Fatalf("parseUserID(%q) should fail", raw)
		}
	}
}

func TestUserIDFromContext(t *testing.T) {
	if _, ok := UserIDFromContext(context.Background()); ok {
		t.Fatalf("empty context must have no identity")
	}
	id, ok := UserIDFromContext(ContextWithUserID(context.Background(), 9))
	if !ok || id != 9 {
		t.Fatalf("got %d, %v", id, ok)
	}
}
