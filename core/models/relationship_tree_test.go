package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_Qualified(t *testing.T) {
	assert.Equal(t, "com.example:foo", Identity{Group: "com.example", Artifact: "foo"}.Qualified())
	assert.Equal(t, ":foo", Identity{Artifact: "foo"}.Qualified())
}

func TestBuildRelationshipTree(t *testing.T) {
	rt := BuildRelationshipTree([]Relationship{
		NewRelationship("org.other:lib-b", "consumer-z"),
		NewRelationship("com.example:service-a", "consumer-x"),
		NewRelationship("com.example:service-a", "consumer-y"),
		NewRelationship(":top", "c"),
	})

	assert.Equal(t, []string{"org.other:lib-b", "com.example:service-a", ":top"}, rt.Producers)
	assert.Equal(t, []string{
		"com",
		"  example",
		"    service-a (com.example:service-a)",
		"      <- consumer-x",
		"      <- consumer-y",
		"org",
		"  other",
		"    lib-b (org.other:lib-b)",
		"      <- consumer-z",
		"top (:top)",
		"  <- c",
	}, rt.Lines())
}

func TestBuildRelationshipTree_Empty(t *testing.T) {
	rt := BuildRelationshipTree(nil)
	assert.Empty(t, rt.Producers)
	assert.Empty(t, rt.Lines())
}
