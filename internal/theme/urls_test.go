package theme

import "testing"

func TestURLSchemes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scheme URLScheme
		home   string
		style  string
		post   string
	}{
		{name: "query", scheme: QueryURLs{}, home: "/", style: "/style.css", post: "/?post=my-post_1"},
		{name: "static", scheme: StaticURLs{}, home: "index.html", style: "style.css", post: "my-post_1.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.scheme.Home(); got != tt.home {
				t.Errorf("Home() = %q, want %q", got, tt.home)
			}
			if got := tt.scheme.Style(); got != tt.style {
				t.Errorf("Style() = %q, want %q", got, tt.style)
			}
			if got := tt.scheme.Post("my-post_1"); got != tt.post {
				t.Errorf("Post() = %q, want %q", got, tt.post)
			}
		})
	}
}
