// Package assets provides the page templates and stylesheets of the site
// theme. Assets can be loaded from embedded files or a custom directory.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default theme)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver tries the custom FilesystemLoader first and falls back to
// EmbeddedLoader only when the asset is not found there. A theme can
// override one stylesheet and keep the built-in templates, or the reverse.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # stylesheet (e.g., default.css)
//	└── templates/
//	    └── {name}/
//	        ├── layout.html      # page skeleton, calls {{template "content" .}}
//	        ├── index.html       # post list
//	        ├── post.html        # single post
//	        └── notfound.html    # unknown slug
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
