package snapshot

import (
	"path"
	"strings"
)

// fenceTags maps lowercased file extensions to fence language tags.
// Unknown extensions fence without an annotation.
var fenceTags = map[string]string{
	"go":       "go",
	"js":       "javascript",
	"jsx":      "javascript",
	"mjs":      "javascript",
	"ts":       "typescript",
	"tsx":      "typescript",
	"py":       "python",
	"rb":       "ruby",
	"rs":       "rust",
	"java":     "java",
	"c":        "c",
	"h":        "c",
	"cpp":      "cpp",
	"cc":       "cpp",
	"cxx":      "cpp",
	"hpp":      "cpp",
	"cs":       "csharp",
	"sh":       "bash",
	"bash":     "bash",
	"zsh":      "bash",
	"php":      "php",
	"swift":    "swift",
	"kt":       "kotlin",
	"kts":      "kotlin",
	"scala":    "scala",
	"html":     "html",
	"htm":      "html",
	"css":      "css",
	"scss":     "scss",
	"less":     "less",
	"json":     "json",
	"yaml":     "yaml",
	"yml":      "yaml",
	"toml":     "toml",
	"ini":      "ini",
	"xml":      "xml",
	"sql":      "sql",
	"md":       "markdown",
	"markdown": "markdown",
	"rst":      "rst",
	"txt":      "text",
	"pl":       "perl",
	"pm":       "perl",
	"lua":      "lua",
	"r":        "r",
	"hs":       "haskell",
	"ex":       "elixir",
	"exs":      "elixir",
	"erl":      "erlang",
	"clj":      "clojure",
	"dart":     "dart",
	"vim":      "vim",
	"proto":    "protobuf",
	"gradle":   "groovy",
	"groovy":   "groovy",
	"ps1":      "powershell",
	"bat":      "batch",
	"cmake":    "cmake",
	"mk":       "makefile",
	"tf":       "hcl",
	"hcl":      "hcl",
	"svelte":   "svelte",
	"vue":      "vue",
}

// FenceTag returns the best-effort syntax tag for a path, or "" when the
// extension is not recognized. Pure lookup, no side effects.
func FenceTag(p string) string {
	return fenceTags[extOf(p)]
}

// extOf returns the lowercased extension of p without the leading dot.
func extOf(p string) string {
	ext := strings.TrimPrefix(path.Ext(path.Base(p)), ".")
	return strings.ToLower(ext)
}
