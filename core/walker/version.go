package walker

import "regexp"

// DefaultVersionPattern accepts one to three dot separated groups of digits,
// the last of which may be "*". Suffixes such as "-SNAPSHOT" do not match.
const DefaultVersionPattern = `^(\d+\.)?(\d+\.)?(\*|\d+)$`

// VersionMatcher reports whether a directory name is a version segment.
// *regexp.Regexp satisfies it.
type VersionMatcher interface {
	MatchString(name string) bool
}

// VersionMatcherFunc adapts a plain predicate to VersionMatcher.
type VersionMatcherFunc func(name string) bool

func (f VersionMatcherFunc) MatchString(name string) bool {
	return f(name)
}

var defaultVersionMatcher = regexp.MustCompile(DefaultVersionPattern)

func DefaultVersionMatcher() VersionMatcher {
	return defaultVersionMatcher
}
