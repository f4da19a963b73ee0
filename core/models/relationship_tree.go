package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tristendillon/depwalk/core/logger"
)

// RelationshipNode is one group segment, producer or consumer in the printed
// view of a walk result.
type RelationshipNode struct {
	Name     string
	Children map[string]*RelationshipNode
	Parent   *RelationshipNode
	Depth    int

	// Consumers is set on producer nodes only, in emission order.
	Consumers []string
}

// RelationshipTree nests producers under their dotted group segments so a
// result can be read the way the contracts directory is laid out.
type RelationshipTree struct {
	Root      *RelationshipNode
	Producers []string
}

func NewRelationshipTree() *RelationshipTree {
	return &RelationshipTree{Root: newNode("", nil)}
}

func newNode(name string, parent *RelationshipNode) *RelationshipNode {
	depth := 0
	if parent != nil {
		depth = parent.Depth + 1
	}
	return &RelationshipNode{
		Name:     name,
		Children: make(map[string]*RelationshipNode),
		Parent:   parent,
		Depth:    depth,
	}
}

func BuildRelationshipTree(relationships []Relationship) *RelationshipTree {
	rt := NewRelationshipTree()
	for _, r := range relationships {
		rt.Add(r)
	}
	return rt
}

func (rt *RelationshipTree) Add(r Relationship) {
	group, artifact, _ := strings.Cut(r.Parent, ":")

	var parts []string
	for _, part := range strings.Split(group, ".") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	parts = append(parts, artifact+" ("+r.Parent+")")

	current := rt.Root
	for _, part := range parts {
		child, exists := current.Children[part]
		if !exists {
			child = newNode(part, current)
			current.Children[part] = child
		}
		current = child
	}

	if current.Consumers == nil {
		rt.Producers = append(rt.Producers, r.Parent)
	}
	current.Consumers = append(current.Consumers, r.Child)
}

func (rt *RelationshipTree) PrintTree(level logger.LogLevel) {
	rt.printNode(rt.Root, "", logger.GetLogFromLevel(level))
}

// Lines renders the tree the same way PrintTree logs it.
func (rt *RelationshipTree) Lines() []string {
	var lines []string
	rt.printNode(rt.Root, "", func(format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	})
	return lines
}

func (rt *RelationshipTree) printNode(node *RelationshipNode, prefix string, logf func(string, ...interface{})) {
	if node != rt.Root {
		logf("%s%s", prefix, node.Name)
		for _, consumer := range node.Consumers {
			logf("%s  <- %s", prefix, consumer)
		}
		prefix += "  "
	}

	keys := make([]string, 0, len(node.Children))
	for k := range node.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rt.printNode(node.Children[key], prefix, logf)
	}
}
