package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "liftover.yaml")

	content := `version: 1
source:
  host: localhost
  database: rekamteknik
  username: root
  password: legacy
target:
  host: db.example.com
  database: postgres
  username: app
  password: newpass
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Source.Port != 3306 {
		t.Errorf("expected default source port 3306, got %d", cfg.Source.Port)
	}
	if cfg.Target.Port != 5432 {
		t.Errorf("expected default target port 5432, got %d", cfg.Target.Port)
	}
	if cfg.Target.Schema != "public" {
		t.Errorf("expected default schema public, got %s", cfg.Target.Schema)
	}
	if cfg.Target.SSLMode != "disable" {
		t.Errorf("expected default ssl_mode disable, got %s", cfg.Target.SSLMode)
	}
	if cfg.Migration.BatchSize != 100 {
		t.Errorf("expected default batch_size 100, got %d", cfg.Migration.BatchSize)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadInvalidVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "liftover.yaml")

	content := `version: 99
source:
  host: localhost
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid version")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadResolvesEnvPasswords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "liftover.yaml")

	content := `version: 1
source:
  host: localhost
  database: rekamteknik
  username: root
  password: ${ENV:LIFTOVER_TEST_SRC_PW}
target:
  host: localhost
  database: postgres
  username: app
  password: ${ENV:LIFTOVER_TEST_TGT_PW}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LIFTOVER_TEST_SRC_PW", "src-secret")
	t.Setenv("LIFTOVER_TEST_TGT_PW", "tgt-secret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source.Password != "src-secret" {
		t.Errorf("expected src-secret, got %s", cfg.Source.Password)
	}
	if cfg.Target.Password != "tgt-secret" {
		t.Errorf("expected tgt-secret, got %s", cfg.Target.Password)
	}
}

func TestSourceDSN(t *testing.T) {
	s := SourceConfig{Host: "127.0.0.1", Port: 3306, Database: "rekamteknik", Username: "root", Password: "pw"}
	got := s.DSN()
	want := "root:pw@tcp(127.0.0.1:3306)/rekamteknik?parseTime=true"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestTargetConnString(t *testing.T) {
	c := TargetConfig{Host: "db", Port: 5432, Database: "postgres", Username: "app", Password: "pw", SSLMode: "require"}
	got := c.ConnString()
	if !strings.HasPrefix(got, "postgres://app:pw@db:5432/postgres") || !strings.Contains(got, "sslmode=require") {
		t.Errorf("unexpected conn string: %s", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "liftover.yaml")

	cfg := &Config{
		Version: CurrentVersion,
		Source:  SourceConfig{Host: "localhost", Database: "rekamteknik", Username: "root"},
		Target:  TargetConfig{Host: "localhost", Database: "postgres", Username: "app"},
	}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Source.Database != "rekamteknik" {
		t.Errorf("expected rekamteknik, got %s", loaded.Source.Database)
	}
}
