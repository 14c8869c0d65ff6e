package pipeline

// CodeRestorer defines the contract for putting protected code back.
type CodeRestorer interface {
	RestoreCode(content string, table *CodeTable) string
}

// PlaceholderCodeRestorer substitutes every placeholder with its HTML.
// Tokens are pairwise distinct, so substitution order does not matter.
type PlaceholderCodeRestorer struct{}

// RestoreCode replaces the placeholders recorded in table, wherever they ended up.
func (r *PlaceholderCodeRestorer) RestoreCode(content string, table *CodeTable) string {
	if table.Len() == 0 {
		return content
	}
	return table.replacer().Replace(content)
}
