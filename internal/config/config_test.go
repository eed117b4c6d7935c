package config_test

import (
	"testing"

	"github.com/keshon/codesnap/internal/config"
	"github.com/keshon/codesnap/internal/fs"
)

func TestLoadDefaults(t *testing.T) {
	s := config.Load(fs.NewMemoryFS())
	if s.Output != config.DefaultOutput {
		t.Fatalf("output = %q, want %q", s.Output, config.DefaultOutput)
	}
	if s.Jobs != 0 || s.Split != 0 {
		t.Fatalf("jobs/split must stay zero without config: %+v", s)
	}
}

func TestLoadFromFile(t *testing.T) {
	m := fs.NewMemoryFS()
	m.WriteFile(config.ConfigFile, []byte(`{"output":"snap.txt","jobs":4,"split":20}`), 0o644)

	s := config.Load(m)
	if s.Output != "snap.txt" || s.Jobs != 4 || s.Split != 20 {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestLoadMalformedFileIgnored(t *testing.T) {
	m := fs.NewMemoryFS()
	m.WriteFile(config.ConfigFile, []byte("{not json"), 0o644)

	s := config.Load(m)
	if s.Output != config.DefaultOutput {
		t.Fatalf("malformed config must fall back to defaults: %+v", s)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	m := fs.NewMemoryFS()
	m.WriteFile(config.ConfigFile, []byte(`{"output":"from-file.txt","jobs":2}`), 0o644)

	t.Setenv("CODESNAP_OUTPUT", "from-env.txt")
	t.Setenv("CODESNAP_JOBS", "8")
	t.Setenv("CODESNAP_SPLIT", "5")

	s := config.Load(m)
	if s.Output != "from-env.txt" || s.Jobs != 8 || s.Split != 5 {
		t.Fatalf("env must win over file: %+v", s)
	}
}

func TestLoadEnvRejectsGarbage(t *testing.T) {
	t.Setenv("CODESNAP_JOBS", "many")
	t.Setenv("CODESNAP_SPLIT", "-3")

	s := config.Load(fs.NewMemoryFS())
	if s.Jobs != 0 || s.Split != 0 {
		t.Fatalf("non-numeric or negative env values must be ignored: %+v", s)
	}
}

func TestIsDocExtension(t *testing.T) {
	for _, ext := range []string{"md", "txt", "adoc"} {
		if !config.IsDocExtension(ext) {
			t.Errorf("%q should be document-like", ext)
		}
	}
	for _, ext := range []string{"go", "py", "", "MD"} {
		if config.IsDocExtension(ext) {
			t.Errorf("%q should not be document-like", ext)
		}
	}
}
