package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tristendillon/depwalk/core/models"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	DOT  Format = "dot"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case JSON, YAML, DOT:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Encode renders relationships in the given format. JSON is the array of
// {"parent","child"} objects read by the graph visualisation; an empty list
// encodes as [].
func Encode(format Format, relationships []models.Relationship) ([]byte, error) {
	if relationships == nil {
		relationships = []models.Relationship{}
	}

	switch format {
	case JSON:
		data, err := json.Marshal(relationships)
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return data, nil
	case YAML:
		data, err := yaml.Marshal(relationships)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return data, nil
	case DOT:
		return encodeDOT(relationships), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Decode reads a previously written JSON or YAML relationship list.
func Decode(format Format, data []byte) ([]models.Relationship, error) {
	var relationships []models.Relationship
	if len(bytes.TrimSpace(data)) == 0 {
		return relationships, nil
	}

	switch format {
	case JSON:
		if err := json.Unmarshal(data, &relationships); err != nil {
			return nil, fmt.Errorf("failed to decode json: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &relationships); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("cannot decode %s output", format)
	}
	return relationships, nil
}

func encodeDOT(relationships []models.Relationship) []byte {
	var buf bytes.Buffer
	buf.WriteString("digraph dependencies {\n")
	for _, r := range relationships {
		fmt.Fprintf(&buf, "  %s -> %s;\n", strconv.Quote(r.Parent), strconv.Quote(r.Child))
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}
