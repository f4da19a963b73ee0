package walker

import (
	"io/fs"
	"path"
	"strings"

	"github.com/tristendillon/depwalk/core/models"
)

// Classify reports whether dir directly contains one of the descriptor files.
// dir is a path inside fsys.
func Classify(fsys fs.FS, dir string, descriptors []string) models.DirectoryKind {
	for _, name := range descriptors {
		info, err := fs.Stat(fsys, path.Join(dir, name))
		if err == nil && !info.IsDir() {
			return models.Producer
		}
	}
	return models.PlainDirectory
}

// ResolveArtifactIdentity derives the group and artifact of a producer from
// its slash separated path. A producer whose own name is a version segment
// is named after its parent:
//
//	<root>/com/example/foo        -> com.example:foo
//	<root>/com/example/foo/1.2.3  -> com.example:foo
//
// The group is empty when the artifact directory sits directly under root or
// is root itself. A root of "." (or "") makes dir a path relative to the
// root; the root then has no name of its own, so a producer whose artifact
// directory is the root gets an empty Artifact.
func ResolveArtifactIdentity(root, dir string, versions VersionMatcher) models.Identity {
	root = path.Clean(root)
	artifactDir := path.Clean(dir)
	if versions.MatchString(path.Base(artifactDir)) {
		artifactDir = path.Dir(artifactDir)
	}
	artifact := path.Base(artifactDir)
	if artifactDir == "." || artifact == ".." {
		artifact = ""
	}
	return models.Identity{
		Group:    groupOf(root, path.Dir(artifactDir)),
		Artifact: artifact,
	}
}

func groupOf(root, dir string) string {
	if root == "." {
		if dir == "." || dir == ".." || strings.HasPrefix(dir, "../") {
			return ""
		}
		return strings.ReplaceAll(dir, "/", ".")
	}

	prefix := root
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	rel, ok := strings.CutPrefix(dir, prefix)
	if !ok {
		return ""
	}
	return strings.ReplaceAll(rel, "/", ".")
}

// EnumerateConsumers lists the names of the immediate subdirectories of dir in
// lexical order. Symlinks that resolve to directories count. Entries for
// which skip returns true are left out; skip receives the entry's path
// inside fsys and may be nil.
func EnumerateConsumers(fsys fs.FS, dir string, skip func(p string) bool) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	consumers := []string{}
	for _, entry := range entries {
		if !isDir(fsys, dir, entry) {
			continue
		}
		if skip != nil && skip(path.Join(dir, entry.Name())) {
			continue
		}
		consumers = append(consumers, entry.Name())
	}
	return consumers, nil
}

func isDir(fsys fs.FS, dir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(fsys, path.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}
