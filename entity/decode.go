package entity

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidEntity is returned for records without an id or entity_type.
var ErrInvalidEntity = errors.New("invalid entity")

// connection decodes either a plain list or a GraphQL connection
// ({edges: [{node: ...}]}) into a slice.
type connection[T any] []T

func (c *connection[T]) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var items []T
		if err := n.Decode(&items); err != nil {
			return err
		}
		*c = items
	case yaml.MappingNode:
		var conn struct {
			Edges []struct {
				Node T `yaml:"node"`
			} `yaml:"edges"`
		}
		if err := n.Decode(&conn); err != nil {
			return err
		}
		items := make([]T, len(conn.Edges))
		for i, edge := range conn.Edges {
			items[i] = edge.Node
		}
		*c = items
	case yaml.ScalarNode:
		if n.Tag != "!!null" {
			return fmt.Errorf("line %d: expected list or connection, got %q", n.Line, n.Value)
		}
		*c = nil
	default:
		return fmt.Errorf("line %d: expected list or connection", n.Line)
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Dates that fail to parse are
// left zero; partial records are common and still render.
func (e *Entity) UnmarshalYAML(n *yaml.Node) error {
	type plain Entity
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	var extra struct {
		CreatedAt string              `yaml:"created_at"`
		FirstSeen string              `yaml:"first_seen"`
		LastSeen  string              `yaml:"last_seen"`
		Published string              `yaml:"published"`
		ValidFrom string              `yaml:"valid_from"`
		Labels    connection[Label]   `yaml:"objectLabel"`
		Markings  connection[Marking] `yaml:"objectMarking"`
	}
	if err := n.Decode(&extra); err != nil {
		return err
	}
	*e = Entity(p)
	e.CreatedAt = parseTime(extra.CreatedAt)
	e.FirstSeen = parseTime(extra.FirstSeen)
	e.LastSeen = parseTime(extra.LastSeen)
	e.Published = parseTime(extra.Published)
	e.ValidFrom = parseTime(extra.ValidFrom)
	e.Labels = extra.Labels
	e.Markings = extra.Markings
	return nil
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Decode reads entities from YAML or JSON. The document is either a list of
// entities or a connection with edges.
func Decode(r io.Reader) ([]Entity, error) {
	var items connection[Entity]
	if err := yaml.NewDecoder(r).Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode entities: %w", err)
	}
	for i, e := range items {
		if e.ID == "" || e.Type == "" {
			return nil, fmt.Errorf("entity %d: %w: id and entity_type are required", i, ErrInvalidEntity)
		}
	}
	return items, nil
}

// LoadFile decodes the entities stored at path.
func LoadFile(path string) ([]Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	items, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}
