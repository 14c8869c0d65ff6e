package assets

import (
	"errors"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_LoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "styles/mine.css", "/* mine */")
	writeAsset(t, dir, "styles/default.css", "/* overridden */")

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	tests := []struct {
		name      string
		styleName string
		want      string
		wantErr   error
	}{
		{name: "custom only", styleName: "mine", want: "/* mine */"},
		{name: "custom overrides embedded", styleName: "default", want: "/* overridden */"},
		{name: "falls back to embedded", styleName: "minimal"},
		{name: "missing everywhere", styleName: "nope", wantErr: ErrStyleNotFound},
		{name: "invalid name not retried", styleName: "../x", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolver.LoadStyle(tt.styleName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if tt.want != "" && got != tt.want {
				t.Errorf("LoadStyle(%q) = %q, want %q", tt.styleName, got, tt.want)
			}
			if got == "" {
				t.Errorf("LoadStyle(%q) returned empty content", tt.styleName)
			}
		})
	}
}

func TestAssetResolver_LoadTemplateSet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTemplateSet(t, dir, "mine")
	writeAsset(t, dir, "templates/broken/layout.html", "<html></html>")

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("custom set", func(t *testing.T) {
		t.Parallel()

		ts, err := resolver.LoadTemplateSet("mine")
		if err != nil {
			t.Fatalf("LoadTemplateSet() error = %v", err)
		}
		if ts.Index != "<!-- mine/index -->" {
			t.Errorf("Index = %q", ts.Index)
		}
	})

	t.Run("falls back to embedded default", func(t *testing.T) {
		t.Parallel()

		ts, err := resolver.LoadTemplateSet(DefaultTemplateSetName)
		if err != nil {
			t.Fatalf("LoadTemplateSet() error = %v", err)
		}
		if ts.Layout == "" {
			t.Error("embedded layout is empty")
		}
	})

	t.Run("incomplete custom set is not hidden by fallback", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadTemplateSet("broken")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("error = %v, want ErrTemplateNotFound", err)
		}
	})
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want bool
	}{
		{ErrStyleNotFound, true},
		{ErrTemplateSetNotFound, true},
		{ErrTemplateNotFound, false},
		{ErrInvalidAssetName, false},
		{ErrPathTraversal, false},
		{errors.New("other"), false},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			t.Parallel()

			if got := isNotFoundError(tt.err); got != tt.want {
				t.Errorf("isNotFoundError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

var _ AssetLoader = (*AssetResolver)(nil)
