package filewalker

import "strings"

// DefaultExtensions is the filter used when the user supplies nothing.
var DefaultExtensions = []string{".csv", ".erb", ".erh"}

// presets are convenience extension sets selectable by name.
var presets = map[string]string{
	"code": ".py,.cpp,.c,.h,.hpp,.cs,.java",
	"web":  ".html,.css,.js,.ts,.jsx,.tsx,.json,.xml",
	"all": ".py,.cpp,.c,.h,.hpp,.cs,.java,.js,.ts,.jsx,.tsx,.html,.css,.xml,.json," +
		".yaml,.yml,.ini,.cfg,.txt,.lua,.rpy,.unity,.prefab,.asset,.scene",
}

// Preset returns the comma-separated extension list for a preset name.
func Preset(name string) (string, bool) {
	list, ok := presets[strings.ToLower(name)]
	return list, ok
}

// PresetNames returns the available preset names.
func PresetNames() []string {
	return []string{"code", "web", "all"}
}

// Normalize parses a free-form comma-separated extension list into an
// ordered filter: entries are trimmed, blanks dropped, a missing leading dot
// inserted, and everything lowercased. An input that yields no valid entries
// falls back to DefaultExtensions.
func Normalize(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return DefaultExtensions
	}

	var exts []string
	for _, ext := range strings.Split(input, ",") {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, strings.ToLower(ext))
	}

	if len(exts) == 0 {
		return DefaultExtensions
	}
	return exts
}

// MatchesExtension reports whether the lowercased file name ends with one of
// the filter suffixes.
func MatchesExtension(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
