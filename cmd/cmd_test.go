package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"serve"},
		{"db-init"},
		{"user", "add"},
		{"stats", "global"},
		{"stats", "profile"},
	} {
		found, _, err := rootCmd.Find(path)
		if err != nil {
			t.Fatalf("find %v: %v", path, err)
		}
		if found.Name() != path[len(path)-1] {
			t.Fatalf("find %v resolved to %q", path, found.Name())
		}
	}
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Fatalf("--config flag missing")
	}
}

func TestArgumentChecksRunBeforeInitialization(t *testing.T) {
	t.Setenv("CORTEXEX_PASSWORD", "")
	cases := []struct {
		args []string
		want string
	}{
		{args: []string{"user", "add", "bob"}, want: "password required"},
		{args: []string{"stats", "profile"}, want: "--user"},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(tc.args)
		err := rootCmd.Execute()
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%v: got %v, want error containing %q", tc.args, err, tc.want)
		}
	}
}
