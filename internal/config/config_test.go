package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"route2file/internal/paths"
)

// isolate points the settings directory at an empty temp dir and clears
// every override that could leak in from the environment.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(paths.HomeEnvVar, home)
	for _, env := range []string{
		ProjectRootEnvVar,
		"ROUTE_TO_FILE_LOGGING_LEVEL",
		"ROUTE_TO_FILE_LOGGING_FORMAT",
		"ROUTE_TO_FILE_LOGGING_FILE",
		"ROUTE_TO_FILE_SEARCH_PREVIEWLIMIT",
		"ROUTE_TO_FILE_SEARCH_PARALLEL",
		"ROUTE_TO_FILE_SEARCH_EXTRAIGNOREDIRS",
	} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
	return home
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, CurrentVersion)
	}
	if cfg.ProjectRoot != "" {
		t.Errorf("ProjectRoot = %q, want empty", cfg.ProjectRoot)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "human" {
		t.Errorf("Logging = %+v, want info/human", cfg.Logging)
	}
	if cfg.Search.PreviewLimit != 20 {
		t.Errorf("PreviewLimit = %d, want 20", cfg.Search.PreviewLimit)
	}
	if !cfg.Search.Parallel {
		t.Error("Parallel should be enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"defaults", func(*Config) {}, ""},
		{"wrong version", func(c *Config) { c.Version = 5 }, "Config.Version"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "Config.Logging.Level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "Config.Logging.Format"},
		{"zero preview", func(c *Config) { c.Search.PreviewLimit = 0 }, "Config.Search.PreviewLimit"},
		{"empty ignore dir", func(c *Config) { c.Search.ExtraIgnoreDirs = []string{""} }, "Config.Search.ExtraIgnoreDirs[0]"},
		{"ignore dir with slash", func(c *Config) { c.Search.ExtraIgnoreDirs = []string{"dist", "a/b"} }, "Config.Search.ExtraIgnoreDirs[1]"},
		{"relative root", func(c *Config) { c.ProjectRoot = "web" }, "Config.ProjectRoot"},
		{"absolute root", func(c *Config) { c.ProjectRoot = filepath.Join(t.TempDir(), "web") }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if ce.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ce.Field, tt.wantField)
			}
		})
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Search.PreviewLimit != 20 || !cfg.Search.Parallel {
		t.Errorf("Search = %+v, want defaults", cfg.Search)
	}
	if cfg.Search.ExtraIgnoreDirs == nil {
		t.Error("ExtraIgnoreDirs should be non-nil")
	}
}

func TestLoadConfig_MissingExplicitPath(t *testing.T) {
	isolate(t)

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("LoadConfig() with a missing explicit path should fail")
	}
}

func TestLoadConfig_Formats(t *testing.T) {
	files := map[string]string{
		"config.json": `{"version":1,"logging":{"level":"debug"},"search":{"previewLimit":5,"extraIgnoreDirs":["dist"]}}`,
		"config.toml": "version = 1\n[logging]\nlevel = \"debug\"\n[search]\npreviewLimit = 5\nextraIgnoreDirs = [\"dist\"]\n",
		"config.yaml": "version: 1\nlogging:\n  level: debug\nsearch:\n  previewLimit: 5\n  extraIgnoreDirs: [dist]\n",
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			home := isolate(t)
			if err := os.WriteFile(filepath.Join(home, name), []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadConfig("")
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.Logging.Level != "debug" {
				t.Errorf("Level = %q, want debug", cfg.Logging.Level)
			}
			if cfg.Logging.Format != "human" {
				t.Errorf("Format = %q, want default human", cfg.Logging.Format)
			}
			if cfg.Search.PreviewLimit != 5 {
				t.Errorf("PreviewLimit = %d, want 5", cfg.Search.PreviewLimit)
			}
			if len(cfg.Search.ExtraIgnoreDirs) != 1 || cfg.Search.ExtraIgnoreDirs[0] != "dist" {
				t.Errorf("ExtraIgnoreDirs = %v, want [dist]", cfg.Search.ExtraIgnoreDirs)
			}
		})
	}
}

func TestLoadConfig_RelativeProjectRoot(t *testing.T) {
	isolate(t)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		env  string
		want string
	}{
		{".", wd},
		{"web/..", wd},
		{"web", filepath.Join(wd, "web")},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(ProjectRootEnvVar, tt.env)

			cfg, err := LoadConfig("")
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.ProjectRoot != tt.want {
				t.Errorf("ProjectRoot = %q, want %q", cfg.ProjectRoot, tt.want)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	home := isolate(t)
	if err := os.WriteFile(filepath.Join(home, "config.json"), []byte(`{"projectRoot":"/from/file"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ProjectRootEnvVar, "/from/env")
	t.Setenv("ROUTE_TO_FILE_LOGGING_LEVEL", "warn")
	t.Setenv("ROUTE_TO_FILE_SEARCH_PARALLEL", "false")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ProjectRoot != "/from/env" {
		t.Errorf("ProjectRoot = %q, want /from/env", cfg.ProjectRoot)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Search.Parallel {
		t.Error("Parallel should be disabled by env")
	}
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatTOML, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "nested", "config."+format)

			cfg := DefaultConfig()
			cfg.ProjectRoot = "/srv/web"
			cfg.Search.ExtraIgnoreDirs = []string{"dist", ".nuxt"}
			if err := cfg.Save(path, format); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			loaded, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if loaded.ProjectRoot != "/srv/web" {
				t.Errorf("ProjectRoot = %q, want /srv/web", loaded.ProjectRoot)
			}
			if strings.Join(loaded.Search.ExtraIgnoreDirs, ",") != "dist,.nuxt" {
				t.Errorf("ExtraIgnoreDirs = %v", loaded.Search.ExtraIgnoreDirs)
			}
			if err := loaded.Validate(); err != nil {
				t.Errorf("loaded config should validate: %v", err)
			}
		})
	}
}

func TestConfig_MarshalUnsupported(t *testing.T) {
	_, err := DefaultConfig().Marshal("ini")
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Field != "format" {
		t.Errorf("Marshal(ini) = %v, want format ConfigError", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"a/config.json": FormatJSON,
		"config.TOML":   FormatTOML,
		"config.yml":    FormatYAML,
		"config.yaml":   FormatYAML,
		"config":        FormatJSON,
	}
	for in, want := range tests {
		if got := FormatFromPath(in); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "version", Message: "bad"}
	if got := err.Error(); got != "config error in field 'version': bad" {
		t.Errorf("Error() = %q", got)
	}
}
