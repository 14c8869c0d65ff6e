// Package theme renders site pages from a template set and a stylesheet.
//
// Templates are html/template sources from internal/assets. The layout is
// parsed once and cloned for each page, and every page defines the
// "content" block the layout calls. Titles, dates, authors and slugs are
// escaped by the template engine; post bodies are already HTML and are
// inserted as template.HTML.
//
// The same Theme serves the preview server and the static build; they
// differ only in their URLScheme.
package theme
