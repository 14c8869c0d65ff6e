// Package content loads posts from a directory of text files.
//
// Each file is one post; its slug is the file name without the content
// extension. Slugs that come from the outside world (query strings, URL
// paths, CLI arguments) go through SanitizeSlug before touching the
// filesystem, so they can never name a file outside the content directory.
package content
