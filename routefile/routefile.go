package routefile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/astrorover/spherenav/sphere"
	"github.com/astrorover/spherenav/vertexgraph"
)

// ErrDataItemIncomplete indicates a network file omitted a required field:
// the body name, a connection endpoint, or a coordinate component.
var ErrDataItemIncomplete = errors.New("routefile: data item is incomplete")

// Network is a fully assembled route network, ready to be built into a graph.
type Network struct {
	Body        sphere.Body
	Connections []sphere.Connection
}

// Build constructs the vertex graph for the network.
func (n *Network) Build() (*vertexgraph.Graph, error) {
	return vertexgraph.Build(n.Connections, n.Body)
}

// filePoint mirrors the YAML shape of a coordinate. Pointer fields
// distinguish an absent component from a legitimate zero value.
type filePoint struct {
	Lat *float64 `yaml:"lat"`
	Lng *float64 `yaml:"lng"`
}

// fileConnection mirrors the YAML shape of one navigable connection.
type fileConnection struct {
	Start  *filePoint `yaml:"start"`
	Finish *filePoint `yaml:"finish"`
}

// fileNetwork mirrors the top level of a network file.
type fileNetwork struct {
	Body        string           `yaml:"body"`
	Connections []fileConnection `yaml:"connections"`
}

// Load reads and parses the network file at path.
func Load(path string) (*Network, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("routefile: read %s: %w", path, err)
	}

	return Parse(raw)
}

// Parse assembles a Network from raw YAML.
//
// Failure modes:
//
//   - malformed YAML wraps the decoder error;
//   - a missing body name, endpoint, or coordinate fails with
//     ErrDataItemIncomplete, wrapped with the position of the gap;
//   - an unknown body name propagates sphere.ErrUnknownBody.
func Parse(raw []byte) (*Network, error) {
	var f fileNetwork
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("routefile: parse: %w", err)
	}

	if f.Body == "" {
		return nil, fmt.Errorf("%w: body is missing", ErrDataItemIncomplete)
	}
	body, err := sphere.ParseBody(f.Body)
	if err != nil {
		return nil, err
	}

	connections := make([]sphere.Connection, 0, len(f.Connections))
	for i, fc := range f.Connections {
		start, err := fc.Start.toPoint()
		if err != nil {
			return nil, fmt.Errorf("%w: connection %d start: %v", ErrDataItemIncomplete, i, err)
		}
		finish, err := fc.Finish.toPoint()
		if err != nil {
			return nil, fmt.Errorf("%w: connection %d finish: %v", ErrDataItemIncomplete, i, err)
		}
		connections = append(connections, sphere.NewConnection(start, finish))
	}

	return &Network{Body: body, Connections: connections}, nil
}

// toPoint converts a parsed coordinate, reporting which component is absent.
func (p *filePoint) toPoint() (sphere.Point, error) {
	switch {
	case p == nil:
		return sphere.Point{}, errors.New("endpoint is missing")
	case p.Lat == nil:
		return sphere.Point{}, errors.New("lat is missing")
	case p.Lng == nil:
		return sphere.Point{}, errors.New("lng is missing")
	}

	return sphere.NewPoint(*p.Lat, *p.Lng), nil
}
