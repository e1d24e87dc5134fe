package flags

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestOptionsConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "zosmfgen.yaml"), []byte("output: zz_file.go\npackages: [./jobs]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		opts         Options
		wantOutput   string
		wantPackages []string
	}{
		{
			name:         "file values",
			opts:         Options{Dir: dir},
			wantOutput:   "zz_file.go",
			wantPackages: []string{"./jobs"},
		},
		{
			name:         "flags win",
			opts:         Options{Dir: dir, Output: "zz_flag.go", Packages: []string{"./datasets", "./files"}},
			wantOutput:   "zz_flag.go",
			wantPackages: []string{"./datasets", "./files"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.opts.Config()
			if err != nil {
				t.Fatalf("Config() error = %v", err)
			}
			if cfg.Output != tt.wantOutput {
				t.Errorf("Output = %q, want %q", cfg.Output, tt.wantOutput)
			}
			if !slices.Equal(cfg.Packages, tt.wantPackages) {
				t.Errorf("Packages = %v, want %v", cfg.Packages, tt.wantPackages)
			}
		})
	}
}

func TestOptionsConfigInvalid(t *testing.T) {
	opts := Options{Dir: t.TempDir(), Provider: "cue"}
	if _, err := opts.Config(); err == nil {
		t.Error("Config() succeeded for cue provider without a schema file")
	}
}
