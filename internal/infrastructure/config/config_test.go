package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err == nil {
		t.Fatalf("expected error for explicit missing file, got config %+v", cfg)
	}

	t.Chdir(t.TempDir())
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != 8080 || cfg.Quiz.DefaultCount != 20 || cfg.Quiz.MaxCount != 200 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	driver, err := cfg.DatabaseDriver()
	if err != nil || driver != DriverPostgres {
		t.Fatalf("DatabaseDriver() = %q, %v", driver, err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	content := "database:\n  driver: sqlite3\n  path: /tmp/quiz.db\nquiz:\n  max_count: 50\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		t.Fatalf("DatabaseURL: %v", err)
	}
	if dsn != "file:/tmp/quiz.db?_fk=1" {
		t.Fatalf("unexpected dsn %q", dsn)
	}
	if cfg.Quiz.MaxCount != 50 {
		t.Fatalf("expected max count 50, got %d", cfg.Quiz.MaxCount)
	}
}

func TestDatabaseURLPostgres(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Driver: "pgx", Host: "db", Port: 5433, Name: "quiz", User: "app", Password: "p@ss", SSLMode: "disable",
	}}
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		t.Fatalf("DatabaseURL: %v", err)
	}
	if dsn != "postgres://app:p%40ss@db:5433/quiz?sslmode=disable" {
		t.Fatalf("unexpected dsn %q", dsn)
	}

	cfg.Database.Driver = "mysql"
	if _, err := cfg.DatabaseURL(); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}

func TestClampCount(t *testing.T) {
	q := QuizConfig{DefaultCount: 20, MaxCount: 200}
	cases := map[int]int{0: 20, -3: 20, 5: 5, 200: 200, 1000: 200}
	for in, want := range cases {
		if got := q.ClampCount(in); got != want {
			t.Fatalf("ClampCount(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestLoadFlagsOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "", "")
	fs.String("db-driver", "", "")
	fs.Int("http-port", 0, "")
	if err := fs.Parse([]string{"--log-level=debug", "--http-port=9090"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load("", fs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Server.HTTPPort != 9090 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Fatalf("unset flag must keep the default driver, got %q", cfg.Database.Driver)
	}
}
