// Package microcoso renders blog posts written in a small line-oriented
// plaintext dialect into HTML fragments.
//
// # Quick Start
//
//	doc := microcoso.Parse("[title]=Hello\n[date]=2024-01-01\nWorld **bold** and *italic*.")
//	fmt.Println(doc.Title) // Hello
//	fmt.Println(doc.Body)  // <p>World <strong>bold</strong> and <em>italic</em>.</p>
//
// # Markup
//
//	[title]=...  [date]=...  [author]=...   metadata lines, anywhere in the file
//	```code```                              fenced code, may span lines
//	`code`                                  inline code
//	[image: ALT | URL ]                     figure with caption
//	[link: TEXT | URL ]                     anchor opening in a new tab
//	## Heading                              levels 2 to 6 (a single # is plain text)
//	- item / * item                         bulleted list
//	1. item                                 numbered list
//	**bold** *italic*
//
// A blank line ends the current paragraph or list. Lines inside a paragraph
// are joined with line breaks. Lines starting with '<' pass through as raw HTML.
//
// # Conversion Pipeline
//
//  1. Header extraction (title, date, author)
//  2. Code protection (code replaced by placeholders, escaped)
//  3. Image and link rewriting
//  4. Block assembly (headings, lists, raw HTML, paragraphs)
//  5. Code restoration
//  6. Optional sanitization (WithSanitizer)
//
// # Configuration
//
//	p, err := microcoso.NewParser(
//	    microcoso.WithEscapedSpans(),        // escape image/link values
//	    microcoso.WithSanitizer(),           // filter the body through an HTML policy
//	    microcoso.WithHighlighting("github"), // highlight ```lang fences with chroma
//	)
//
// Missing metadata falls back to "Titolo Sconosciuto", "9999-12-31" and
// "Autore Sconosciuto". Malformed markup is never rejected; it is rendered
// as text. A Parser is safe for concurrent use.
package microcoso
