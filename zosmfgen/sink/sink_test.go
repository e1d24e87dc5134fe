package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		errMsg string
	}{
		{name: "simple", path: "zz_endpoints.go"},
		{name: "nested", path: "datasets/zz_endpoints.go"},
		{name: "empty", path: "", errMsg: "empty"},
		{name: "absolute", path: "/tmp/zz_endpoints.go", errMsg: "absolute paths not allowed"},
		{name: "drive letter", path: "C:/zz_endpoints.go", errMsg: "absolute paths not allowed"},
		{name: "backslash", path: `datasets\zz_endpoints.go`, errMsg: "separator"},
		{name: "traversal", path: "datasets/../zz_endpoints.go", errMsg: "path traversal not allowed"},
		{name: "leading traversal", path: "../zz_endpoints.go", errMsg: "path traversal not allowed"},
		{name: "dot prefix", path: "./zz_endpoints.go", errMsg: "not clean"},
		{name: "double slash", path: "datasets//zz_endpoints.go", errMsg: "not clean"},
		{name: "trailing slash", path: "datasets/", errMsg: "not clean"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("ValidatePath(%q) error = %v", tt.path, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidatePath(%q) error = %v, want error containing %q", tt.path, err, tt.errMsg)
			}
		})
	}
}

func TestMemorySink(t *testing.T) {
	s := NewMemorySink()
	ctx := context.Background()

	content := []byte("package jobs\n")
	if err := s.WriteFile(ctx, "jobs/zz_endpoints.go", content); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	content[0] = 'X'
	if got := string(s.Get("jobs/zz_endpoints.go")); got != "package jobs\n" {
		t.Errorf("Get() = %q, want content copied at write time", got)
	}
	if got := s.Get("missing.go"); got != nil {
		t.Errorf("Get(missing) = %q, want nil", got)
	}

	if err := s.WriteFile(ctx, "datasets/zz_endpoints.go", []byte("package datasets\n")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if got, want := s.Paths(), []string{"datasets/zz_endpoints.go", "jobs/zz_endpoints.go"}; !slices.Equal(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}

	if err := s.WriteFile(ctx, "../escape.go", nil); err == nil {
		t.Error("WriteFile(../escape.go) succeeded, want error")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := s.WriteFile(cancelled, "late.go", nil); err == nil {
		t.Error("WriteFile() with cancelled context succeeded, want error")
	}
}

func TestMemorySink_Concurrent(t *testing.T) {
	s := NewMemorySink()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path := fmt.Sprintf("pkg%d/zz_endpoints.go", i)
			if err := s.WriteFile(context.Background(), path, []byte(path)); err != nil {
				t.Errorf("WriteFile(%q) error = %v", path, err)
			}
		}()
	}
	wg.Wait()
	if got := len(s.Paths()); got != 50 {
		t.Errorf("len(Paths()) = %d, want 50", got)
	}
}

func TestMemorySink_Stale(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "files"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "files", "zz_endpoints.go"), []byte("current"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "jobs"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "jobs", "zz_endpoints.go"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewMemorySink()
	ctx := context.Background()
	for path, content := range map[string]string{
		"files/zz_endpoints.go":    "current",
		"jobs/zz_endpoints.go":     "new",
		"datasets/zz_endpoints.go": "new",
	} {
		if err := s.WriteFile(ctx, path, []byte(content)); err != nil {
			t.Fatal(err)
		}
	}

	stale, err := s.Stale(root)
	if err != nil {
		t.Fatalf("Stale() error = %v", err)
	}
	if want := []string{"datasets/zz_endpoints.go", "jobs/zz_endpoints.go"}; !slices.Equal(stale, want) {
		t.Errorf("Stale() = %v, want %v", stale, want)
	}
}

func TestFilesystemSink(t *testing.T) {
	root := t.TempDir()
	s := NewFilesystemSink(root)
	ctx := context.Background()

	if err := s.WriteFile(ctx, "datasets/zz_endpoints.go", []byte("v1")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	full := filepath.Join(root, "datasets", "zz_endpoints.go")
	got, err := os.ReadFile(full)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "v1" {
		t.Errorf("content = %q, want v1", got)
	}
	info, err := os.Stat(full)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("mode = %v, want 0644", info.Mode().Perm())
	}

	t.Run("identical content keeps file", func(t *testing.T) {
		old := time.Now().Add(-time.Hour).Truncate(time.Second)
		if err := os.Chtimes(full, old, old); err != nil {
			t.Fatal(err)
		}
		if err := s.WriteFile(ctx, "datasets/zz_endpoints.go", []byte("v1")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		info, err := os.Stat(full)
		if err != nil {
			t.Fatal(err)
		}
		if !info.ModTime().Equal(old) {
			t.Errorf("ModTime = %v, want %v", info.ModTime(), old)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		if err := s.WriteFile(ctx, "datasets/zz_endpoints.go", []byte("v2")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		got, err := os.ReadFile(full)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "v2" {
			t.Errorf("content = %q, want v2", got)
		}
	})

	t.Run("no temp files left", func(t *testing.T) {
		entries, err := os.ReadDir(filepath.Join(root, "datasets"))
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".zosmfgen-") {
				t.Errorf("leftover temp file %s", e.Name())
			}
		}
	})

	t.Run("rejects traversal", func(t *testing.T) {
		if err := s.WriteFile(ctx, "../outside.go", []byte("x")); err == nil {
			t.Error("WriteFile(../outside.go) succeeded, want error")
		}
	})
}
