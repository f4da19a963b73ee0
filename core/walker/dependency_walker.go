package walker

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tristendillon/depwalk/core/logger"
	"github.com/tristendillon/depwalk/core/models"
)

var ErrNotDirectory = errors.New("not a directory")

type DependencyWalker interface {
	Walk(root string) ([]models.Relationship, error)
	WalkFS(fsys fs.FS, root string) ([]models.Relationship, error)
}

// DependencyWalkerImpl finds producer directories (those holding a build
// descriptor) and records one relationship per immediate subdirectory of
// each. A producer's subtree is never descended into, so descriptors nested
// inside a producer are invisible.
//
// State is rebuilt on every walk; a walker must not be shared between
// goroutines.
type DependencyWalkerImpl struct {
	Descriptors []string

	// Exclude holds doublestar patterns matched against slash paths relative
	// to the root.
	Exclude  []string
	Versions VersionMatcher
	Log      logger.Sink

	root           string
	relationships  []models.Relationship
	foundProducers []string
	foundConsumers []string
}

// NewDependencyWalker returns a walker for the given descriptor file names.
// A nil matcher selects DefaultVersionMatcher and a nil sink the global
// logger.
func NewDependencyWalker(descriptors, exclude []string, versions VersionMatcher, sink logger.Sink) *DependencyWalkerImpl {
	if versions == nil {
		versions = DefaultVersionMatcher()
	}
	if sink == nil {
		sink = logger.Default()
	}
	return &DependencyWalkerImpl{
		Descriptors: descriptors,
		Exclude:     exclude,
		Versions:    versions,
		Log:         sink,
	}
}

// Walk analyzes the directory tree at root on the local filesystem.
func (w *DependencyWalkerImpl) Walk(root string) ([]models.Relationship, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &FilesystemError{Path: root, Err: err}
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, &FilesystemError{Path: abs, Err: err}
	}
	if !info.IsDir() {
		return nil, &FilesystemError{Path: abs, Err: ErrNotDirectory}
	}
	return w.WalkFS(os.DirFS(abs), filepath.ToSlash(abs))
}

// WalkFS analyzes fsys starting at ".". root is the slash separated path the
// tree is known by; producer identities are resolved against it.
func (w *DependencyWalkerImpl) WalkFS(fsys fs.FS, root string) ([]models.Relationship, error) {
	w.reset(root)

	if err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		return w.visit(fsys, p, d, err)
	}); err != nil {
		return nil, err
	}

	w.Log.Debug("Walked %s: %d producers, %d relationships", root, len(w.foundProducers), len(w.relationships))
	return w.relationships, nil
}

func (w *DependencyWalkerImpl) Relationships() []models.Relationship {
	return w.relationships
}

// FoundProducers returns the qualified identifiers of the producers seen in
// the last walk.
func (w *DependencyWalkerImpl) FoundProducers() []string {
	return w.foundProducers
}

// FoundConsumers returns consumer names in the order they were emitted.
func (w *DependencyWalkerImpl) FoundConsumers() []string {
	return w.foundConsumers
}

func (w *DependencyWalkerImpl) reset(root string) {
	w.root = path.Clean(root)
	w.relationships = []models.Relationship{}
	w.foundProducers = []string{}
	w.foundConsumers = []string{}
}

func (w *DependencyWalkerImpl) visit(fsys fs.FS, p string, d fs.DirEntry, err error) error {
	if err != nil {
		if p == "." {
			return &FilesystemError{Path: w.root, Err: err}
		}
		w.Log.Warn("Skipping unreadable directory %s: %v", path.Join(w.root, p), err)
		return nil
	}

	if !d.IsDir() {
		return nil
	}

	if w.excluded(p) {
		w.Log.Debug("Excluding directory: %s", p)
		return fs.SkipDir
	}

	if Classify(fsys, p, w.Descriptors) != models.Producer {
		return nil
	}

	w.visitProducer(fsys, p)
	return fs.SkipDir
}

func (w *DependencyWalkerImpl) visitProducer(fsys fs.FS, p string) {
	dir := path.Join(w.root, p)
	identity := ResolveArtifactIdentity(w.root, dir, w.Versions)
	if identity.Artifact == "" {
		w.Log.Warn("Skipping producer %s: the root %q has no name, walk it by its path instead", dir, w.root)
		return
	}
	ga := identity.Qualified()
	w.foundProducers = append(w.foundProducers, ga)

	consumers, err := EnumerateConsumers(fsys, p, w.excluded)
	if err != nil {
		w.Log.Warn("Cannot list consumers of [%s] in %s: %v", ga, dir, err)
		return
	}

	for _, consumer := range consumers {
		w.foundConsumers = append(w.foundConsumers, consumer)
		w.relationships = append(w.relationships, models.NewRelationship(ga, consumer))
	}
	w.Log.Info("Found [%s] producer with consumers %v", ga, consumers)
}

func (w *DependencyWalkerImpl) excluded(p string) bool {
	if p == "." {
		return false
	}
	for _, pattern := range w.Exclude {
		if ok, _ := doublestar.Match(pattern, p); ok {
			return true
		}
	}
	return false
}
