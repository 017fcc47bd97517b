package core

import "strings"

// ReviewPolicy represents the structure of the .codegrade.yml file. It
// controls which files of a candidate repository are eligible for the review
// corpus; the size and file-count caps are fixed and not configurable here.
type ReviewPolicy struct {
	// File extensions eligible for corpus inclusion. The leading dot is
	// optional in the file; it is normalized on load.
	AllowedExts []string `yaml:"allowed_exts"`

	// Exclusion of entire directories by name.
	// Example: ["dist", "build", "vendor"]
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// DefaultReviewPolicy returns the built-in eligibility rules.
func DefaultReviewPolicy() *ReviewPolicy {
	return &ReviewPolicy{
		AllowedExts: []string{
			".py", ".js", ".java", ".cpp", ".c", ".cs", ".rb",
			".go", ".php", ".html", ".css", ".swift", ".kt",
		},
		ExcludeDirs: []string{},
	}
}

// Eligible reports whether a repository path qualifies for corpus inclusion:
// none of its directory segments is excluded and it ends with an allowed
// extension.
func (p *ReviewPolicy) Eligible(path string) bool {
	if len(p.ExcludeDirs) > 0 {
		segments := strings.Split(path, "/")
		for _, segment := range segments[:len(segments)-1] {
			for _, dir := range p.ExcludeDirs {
				if segment == dir {
					return false
				}
			}
		}
	}

	for _, ext := range p.AllowedExts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
