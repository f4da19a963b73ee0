package models

// Relationship links a producer to one of its consumers. The json keys are
// read by the graph visualisation and must not change.
type Relationship struct {
	Parent string `json:"parent" yaml:"parent"`
	Child  string `json:"child" yaml:"child"`
}

func NewRelationship(parent, child string) Relationship {
	return Relationship{Parent: parent, Child: child}
}

// Identity is the Maven-style coordinate of a producer.
type Identity struct {
	Group    string
	Artifact string
}

// Qualified returns "<group>:<artifact>".
func (i Identity) Qualified() string {
	return i.Group + ":" + i.Artifact
}

type DirectoryKind int

const (
	PlainDirectory DirectoryKind = iota
	Producer
)

func (k DirectoryKind) String() string {
	if k == Producer {
		return "producer"
	}
	return "directory"
}
