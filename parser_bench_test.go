//go:build bench

package microcoso

import (
	"fmt"
	"strings"
	"testing"
)

// BenchmarkParse measures the full pipeline on posts of growing size.
func BenchmarkParse(b *testing.B) {
	sizes := []int{1, 10, 100}

	for _, size := range sizes {
		content := generatePost(size)
		b.Run(fmt.Sprintf("sections_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = Parse(content)
			}
		})
	}
}

// generatePost builds a post exercising every construct n times.
func generatePost(n int) string {
	var sb strings.Builder
	sb.WriteString("[title]=Bench\n[date]=2024-01-01\n[author]=Bench\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "## Section %d\n", i)
		sb.WriteString("Some **bold** and *italic* text with `code`.\n")
		sb.WriteString("A second line in the same paragraph.\n\n")
		sb.WriteString("- first\n- second\n1. third\n\n")
		sb.WriteString("```\nfunc main() { fmt.Println(\"*\") }\n```\n")
		sb.WriteString("[image: Pic | /p.png ]\n")
		sb.WriteString("See [link: docs | https://example.com ] for more.\n\n")
	}
	return sb.String()
}
