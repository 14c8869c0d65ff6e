package theme

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/microcoso/microcoso/internal/assets"
	"github.com/microcoso/microcoso/internal/content"
	"github.com/microcoso/microcoso/internal/dateutil"
)

// Sentinel errors for theme operations.
var (
	ErrTemplateParse  = errors.New("template parse failed")
	ErrTemplateRender = errors.New("template render failed")
)

// Body classes set on <body>, used by stylesheets to tell pages apart.
const (
	ClassHome       = "home"
	ClassSinglePost = "single-post"
)

// CSSWriter writes extra stylesheet rules, such as the classes of
// highlighted code.
type CSSWriter interface {
	WriteHighlightCSS(w io.Writer) error
}

// Site is the site-wide data every page sees.
type Site struct {
	Title    string
	Language string
	Footer   template.HTML
	Year     int
}

// PostView is a post prepared for a template.
type PostView struct {
	Slug   string
	URL    string
	Title  string
	Date   string // formatted with the configured date format
	Author string
	Body   template.HTML
}

// Page is the data passed to the layout and page templates.
type Page struct {
	Site      Site
	Title     string // empty on the list page
	BodyClass string
	StyleURL  string
	HomeURL   string

	Posts []PostView // list page
	Post  *PostView  // post page
	Slug  string     // not-found page

	ContentDir string // shown when the list is empty
	Extension  string
}

// Theme renders pages. Create with New; a Theme is safe for concurrent use.
type Theme struct {
	index      *template.Template
	post       *template.Template
	notFound   *template.Template
	stylesheet string

	site       Site
	now        func() time.Time
	dateFormat string
	urls       URLScheme
	contentDir string
	extension  string
}

// Option configures a Theme.
type Option func(*themeConfig)

type themeConfig struct {
	title      string
	language   string
	footer     string
	dateFormat string
	urls       URLScheme
	contentDir string
	extension  string
	highlight  CSSWriter
	now        func() time.Time
}

// WithSite sets the site title and the page language.
func WithSite(title, language string) Option {
	return func(c *themeConfig) {
		c.title = title
		c.language = language
	}
}

// WithFooter sets the footer, written in CommonMark.
func WithFooter(markdown string) Option {
	return func(c *themeConfig) {
		c.footer = markdown
	}
}

// WithDateFormat sets the display format of post dates: a preset name
// (iso, european, us, long) or a token format. Empty shows dates as written.
func WithDateFormat(format string) Option {
	return func(c *themeConfig) {
		c.dateFormat = format
	}
}

// WithURLs sets the link scheme. The default is QueryURLs.
func WithURLs(urls URLScheme) Option {
	return func(c *themeConfig) {
		if urls != nil {
			c.urls = urls
		}
	}
}

// WithContentHint sets the directory and extension named on an empty list page.
func WithContentHint(dir, extension string) Option {
	return func(c *themeConfig) {
		c.contentDir = dir
		c.extension = extension
	}
}

// WithHighlightCSS appends the rules written by w to the stylesheet.
func WithHighlightCSS(w CSSWriter) Option {
	return func(c *themeConfig) {
		c.highlight = w
	}
}

// WithClock sets the time source for the footer year. The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *themeConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// Load builds a Theme from the named template set and stylesheet.
func Load(loader assets.AssetLoader, setName, styleName string, opts ...Option) (*Theme, error) {
	set, err := loader.LoadTemplateSet(setName)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	style, err := loader.LoadStyle(styleName)
	if err != nil {
		return nil, fmt.Errorf("loading style: %w", err)
	}
	return New(set, style, opts...)
}

// New parses a template set and prepares the stylesheet.
func New(set *assets.TemplateSet, style string, opts ...Option) (*Theme, error) {
	cfg := themeConfig{
		urls: QueryURLs{},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	layout, err := template.New(assets.LayoutTemplate).Parse(set.Layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrTemplateParse, set.Name, assets.LayoutTemplate, err)
	}

	t := &Theme{
		now:        cfg.now,
		dateFormat: cfg.dateFormat,
		urls:       cfg.urls,
		contentDir: cfg.contentDir,
		extension:  cfg.extension,
	}
	if t.index, err = parsePage(layout, set.Name, assets.IndexTemplate, set.Index); err != nil {
		return nil, err
	}
	if t.post, err = parsePage(layout, set.Name, assets.PostTemplate, set.Post); err != nil {
		return nil, err
	}
	if t.notFound, err = parsePage(layout, set.Name, assets.NotFoundTemplate, set.NotFound); err != nil {
		return nil, err
	}

	footer, err := renderFooter(cfg.footer)
	if err != nil {
		return nil, err
	}
	t.site = Site{
		Title:    cfg.title,
		Language: cfg.language,
		Footer:   footer,
	}

	t.stylesheet, err = buildStylesheet(style, cfg.highlight)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// parsePage clones the layout and adds a page defining its "content" block.
func parsePage(layout *template.Template, setName, name, source string) (*template.Template, error) {
	page, err := layout.Clone()
	if err == nil {
		_, err = page.New(name).Parse(source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrTemplateParse, setName, name, err)
	}
	return page, nil
}

func buildStylesheet(style string, highlight CSSWriter) (string, error) {
	if highlight == nil {
		return style, nil
	}

	var buf strings.Builder
	buf.WriteString(style)
	if style != "" && !strings.HasSuffix(style, "\n") {
		buf.WriteByte('\n')
	}
	if err := highlight.WriteHighlightCSS(&buf); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return buf.String(), nil
}

// Stylesheet returns the page CSS, highlight rules included.
func (t *Theme) Stylesheet() string {
	return t.stylesheet
}

// URLs returns the link scheme of the theme.
func (t *Theme) URLs() URLScheme {
	return t.urls
}

// RenderIndex writes the list page.
func (t *Theme) RenderIndex(w io.Writer, posts []*content.Post) error {
	views := make([]PostView, len(posts))
	for i, p := range posts {
		views[i] = t.view(p)
	}

	page := t.page("", ClassHome)
	page.Posts = views
	return t.execute(w, t.index, assets.IndexTemplate, page)
}

// RenderPost writes the page of a single post.
func (t *Theme) RenderPost(w io.Writer, post *content.Post) error {
	view := t.view(post)

	page := t.page(post.Title, ClassSinglePost)
	page.Post = &view
	return t.execute(w, t.post, assets.PostTemplate, page)
}

// RenderNotFound writes the page shown for an unknown slug.
func (t *Theme) RenderNotFound(w io.Writer, slug string) error {
	page := t.page("Not found", ClassSinglePost)
	page.Slug = slug
	return t.execute(w, t.notFound, assets.NotFoundTemplate, page)
}

func (t *Theme) page(title, class string) Page {
	site := t.site
	site.Year = t.now().Year()

	return Page{
		Site:       site,
		Title:      title,
		BodyClass:  class,
		StyleURL:   t.urls.Style(),
		HomeURL:    t.urls.Home(),
		ContentDir: t.contentDir,
		Extension:  t.extension,
	}
}

func (t *Theme) view(p *content.Post) PostView {
	return PostView{
		Slug:   p.Slug,
		URL:    t.urls.Post(p.Slug),
		Title:  p.Title,
		Date:   dateutil.FormatDate(p.Date, t.dateFormat),
		Author: p.Author,
		Body:   template.HTML(p.Body), // #nosec G203 -- parser output
	}
}

// execute renders into a buffer first so a failing template never leaves
// half a page in w.
func (t *Theme) execute(w io.Writer, tmpl *template.Template, name string, page Page) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, assets.LayoutTemplate, page); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTemplateRender, name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
