package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("IMAGEGEN_FONT", "")
	t.Setenv("IMAGEGEN_MAX_UPLOAD_MB", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("IMAGEGEN_MAX_PIXELS", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.Quality != 95 {
		t.Errorf("expected quality 95, got %v", cfg.Quality)
	}
	if cfg.MaxPixels != 40_000_000 {
		t.Errorf("unexpected pixel limit %d", cfg.MaxPixels)
	}
	if cfg.MaxUploadBytes() != 20<<20 {
		t.Errorf("unexpected upload limit %d", cfg.MaxUploadBytes())
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "imagegen.yaml")
	data := "port: \"9000\"\nquality: 80\nfetch_timeout: 3s\nfont_path: /fonts/impact.ttf\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "9100")
	t.Setenv("IMAGEGEN_FONT", "")
	t.Setenv("IMAGEGEN_MAX_UPLOAD_MB", "5")
	t.Setenv("GIN_MODE", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9100" {
		t.Errorf("env should override file port, got %s", cfg.Port)
	}
	if cfg.Quality != 80 {
		t.Errorf("expected quality 80, got %v", cfg.Quality)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", cfg.FetchTimeout)
	}
	if cfg.FontPath != "/fonts/impact.ttf" {
		t.Errorf("unexpected font path %q", cfg.FontPath)
	}
	if cfg.MaxUploadMB != 5 {
		t.Errorf("expected 5MB, got %d", cfg.MaxUploadMB)
	}
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("IMAGEGEN_MAX_UPLOAD_MB", "lots")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for non-numeric upload limit")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_MaxPixelsEnv(t *testing.T) {
	t.Setenv("IMAGEGEN_MAX_PIXELS", "1000")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxPixels != 1000 {
		t.Errorf("expected 1000, got %d", cfg.MaxPixels)
	}

	t.Setenv("IMAGEGEN_MAX_PIXELS", "-1")
	if _, err := Load(""); err == nil {
		t.Error("expected error for negative pixel limit")
	}
}

func TestValidateQuality(t *testing.T) {
	for _, q := range []float32{0, -5, 100.5} {
		if err := ValidateQuality(q); err == nil {
			t.Errorf("ValidateQuality(%v) should fail", q)
		}
	}
	for _, q := range []float32{1, 95, 100} {
		if err := ValidateQuality(q); err != nil {
			t.Errorf("ValidateQuality(%v) = %v", q, err)
		}
	}
}
