package web_assets

import "embed"

// Assets holds the task page template and its static files.
//
//go:embed index.html.tmpl static
var Assets embed.FS
