package generator

import (
	"crypto/md5"
	"fmt"
	"io/fs"

	"github.com/tristendillon/depwalk/core/config"
	"github.com/tristendillon/depwalk/core/logger"
	"github.com/tristendillon/depwalk/core/models"
	"github.com/tristendillon/depwalk/core/output"
	"github.com/tristendillon/depwalk/core/walker"
)

type GraphGenerator struct {
	Root   string
	Walker *walker.DependencyWalkerImpl
	Writer *output.Writer

	// FS, when set, is walked instead of the local directory at Root.
	FS fs.FS

	lastHash string
}

type Result struct {
	Relationships []models.Relationship
	Producers     []string

	// Written is false when the rendered output matched the previous write.
	Written bool
}

func NewGraphGenerator(cfg *config.Config, sink logger.Sink) (*GraphGenerator, error) {
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return &GraphGenerator{
		Root:   cfg.Root,
		Walker: walker.NewDependencyWalker(cfg.Descriptors, cfg.Exclude, nil, sink),
		Writer: output.NewWriter(cfg.Output.Path, format, cfg.Output.Append),
	}, nil
}

// Generate walks the root once and writes the relationship list, logging the
// grouped result at logLevel.
func (g *GraphGenerator) Generate(logLevel logger.LogLevel) (*Result, error) {
	relationships, err := g.walk()
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", g.Root, err)
	}

	tree := models.BuildRelationshipTree(relationships)
	tree.PrintTree(logLevel)

	result := &Result{
		Relationships: relationships,
		Producers:     g.Walker.FoundProducers(),
	}

	data, err := g.Writer.Render(relationships)
	if err != nil {
		return nil, fmt.Errorf("failed to render relationships: %w", err)
	}

	hash := fingerprint(data)
	if hash == g.lastHash {
		logger.Debug("Relationships unchanged, skipping write to %s", g.Writer.Path)
		return result, nil
	}

	if err := g.Writer.Write(data); err != nil {
		return nil, err
	}
	g.lastHash = hash
	result.Written = true

	logger.GetLogFromLevel(logLevel)("Wrote %d relationships from %d producers to %s",
		len(relationships), len(result.Producers), g.Writer.Path)
	return result, nil
}

func (g *GraphGenerator) walk() ([]models.Relationship, error) {
	if g.FS != nil {
		return g.Walker.WalkFS(g.FS, g.Root)
	}
	return g.Walker.Walk(g.Root)
}

func fingerprint(data []byte) string {
	return fmt.Sprintf("%x", md5.Sum(data))
}
