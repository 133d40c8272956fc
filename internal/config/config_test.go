package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/loom-ui/loom/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.Preview.Port != DefaultPort {
		t.Errorf("Preview.Port = %d, want %d", cfg.Preview.Port, DefaultPort)
	}
	if cfg.Preview.Host != DefaultHost {
		t.Errorf("Preview.Host = %q, want %q", cfg.Preview.Host, DefaultHost)
	}
	if cfg.Export.Output != DefaultOutput {
		t.Errorf("Export.Output = %q, want %q", cfg.Export.Output, DefaultOutput)
	}
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `{
			"name": "demo",
			"preview": {"port": 5000, "host": "0.0.0.0", "pretty": true},
			"export": {"output": "out"}
		}`)

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Name != "demo" {
			t.Errorf("Name = %q, want demo", cfg.Name)
		}
		if cfg.Preview.Port != 5000 {
			t.Errorf("Preview.Port = %d, want 5000", cfg.Preview.Port)
		}
		if got := cfg.PreviewAddress(); got != "0.0.0.0:5000" {
			t.Errorf("PreviewAddress() = %q, want 0.0.0.0:5000", got)
		}
		if got := cfg.OutputPath(); got != filepath.Join(dir, "out") {
			t.Errorf("OutputPath() = %q, want %q", got, filepath.Join(dir, "out"))
		}
	})

	t.Run("empty object gets defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `{}`)

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Preview.Port != DefaultPort {
			t.Errorf("Preview.Port = %d, want %d", cfg.Preview.Port, DefaultPort)
		}
		if cfg.Export.Output != DefaultOutput {
			t.Errorf("Export.Output = %q, want %q", cfg.Export.Output, DefaultOutput)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(t.TempDir())
		if !errors.HasCode(err, "E500") {
			t.Errorf("Load() error = %v, want E500", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `{not json`)

		_, err := Load(dir)
		if !errors.HasCode(err, "E500") {
			t.Errorf("Load() error = %v, want E500", err)
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `{"preview": {"port": 70000}}`)

		_, err := Load(dir)
		if !errors.HasCode(err, "E501") {
			t.Errorf("Load() error = %v, want E501", err)
		}
	})

	t.Run("s3 bucket without region", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `{"export": {"s3": {"bucket": "site"}}}`)

		_, err := Load(dir)
		if !errors.HasCode(err, "E501") {
			t.Errorf("Load() error = %v, want E501", err)
		}
	})
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := New()
	cfg.Name = "saved"
	cfg.Export.S3 = S3Config{Bucket: "site", Region: "us-east-1", Prefix: "preview/"}
	if err := cfg.SaveTo(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Name != "saved" {
		t.Errorf("Name = %q, want saved", loaded.Name)
	}
	if !loaded.HasPublish() {
		t.Error("HasPublish() = false, want true")
	}
	if loaded.Export.S3.Prefix != "preview/" {
		t.Errorf("S3.Prefix = %q, want preview/", loaded.Export.S3.Prefix)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	cfg := New()
	if err := cfg.Save(); err == nil {
		t.Error("Save() on unloaded config should fail")
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{}`)

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	t.Run("walks up to config", func(t *testing.T) {
		got, err := FindProjectRoot(nested)
		if err != nil {
			t.Fatalf("FindProjectRoot() error: %v", err)
		}
		// Resolve symlinks so macOS /var vs /private/var compares equal.
		wantResolved, _ := filepath.EvalSymlinks(root)
		gotResolved, _ := filepath.EvalSymlinks(got)
		if gotResolved != wantResolved {
			t.Errorf("FindProjectRoot() = %q, want %q", got, root)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := FindProjectRoot(t.TempDir())
		if !errors.HasCode(err, "E500") {
			t.Errorf("FindProjectRoot() error = %v, want E500", err)
		}
	})
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if Exists(dir) {
		t.Error("Exists() = true for empty dir")
	}
	writeConfig(t, dir, `{}`)
	if !Exists(dir) {
		t.Error("Exists() = false after writing config")
	}
}
