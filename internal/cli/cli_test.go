package cli

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/stagehand/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "single", input: "text", want: []string{"text"}},
		{name: "multiple", input: "text,json", want: []string{"text", "json"}},
		{name: "whitespace and case", input: " Text , JSON ", want: []string{"text", "json"}},
		{name: "empty defaults to text", input: "", want: []string{"text"}},
		{name: "trailing comma", input: "json,", want: []string{"json"}},
		{name: "unknown format", input: "svg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFormats(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseFormats(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("expected INVALID_FORMAT, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFormats(%q) unexpected error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("format %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCacheDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	want := filepath.Join("/tmp/xdg-test", appName)
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestRootCommandStructure(t *testing.T) {
	root := New().RootCommand()

	if root.Use != appName {
		t.Errorf("root.Use = %q, want %q", root.Use, appName)
	}

	want := map[string]bool{
		"render":     false,
		"preview":    false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
