package wiring

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/ropchain/pkg/rop/chain"
)

var (
	ErrEmptyLayout   = errors.New("wiring: layout payload is empty")
	ErrInvalidRoute  = errors.New("wiring: invalid route")
	ErrUnknownNode   = errors.New("wiring: unknown node")
	ErrDuplicateNode = errors.New("wiring: duplicate node")
	ErrBlankName     = errors.New("wiring: blank node name")
)

// Layout lists routes; each route links its nodes left to right, the way
// a >> b >> c would.
type Layout struct {
	Routes [][]string `yaml:"routes"`
}

// Parse decodes and validates a YAML layout.
func Parse(data []byte) (Layout, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Layout{}, ErrEmptyLayout
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("wiring: decode layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Load reads a YAML layout from path.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("wiring: read %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("wiring: %s: %w", path, err)
	}
	return l, nil
}

func (l Layout) Validate() error {
	if len(l.Routes) == 0 {
		return fmt.Errorf("%w: no routes", ErrInvalidRoute)
	}
	for i, route := range l.Routes {
		if len(route) < 2 {
			return fmt.Errorf("%w: route %d needs at least two nodes", ErrInvalidRoute, i)
		}
		for _, name := range route {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("%w: route %d has a blank node name", ErrInvalidRoute, i)
			}
		}
	}
	return nil
}

// Registry resolves node names used in a Layout.
type Registry[A, R any] struct {
	nodes map[string]*chain.Node[A, R]
}

func NewRegistry[A, R any]() *Registry[A, R] {
	return &Registry[A, R]{nodes: make(map[string]*chain.Node[A, R])}
}

// Register adds nodes under their trimmed names. Nothing is added when any
// name is already taken or repeats within nodes.
func (r *Registry[A, R]) Register(nodes ...*chain.Node[A, R]) error {
	batch := make(map[string]*chain.Node[A, R], len(nodes))
	for _, n := range nodes {
		name := strings.TrimSpace(n.Name())
		if name == "" {
			return ErrBlankName
		}
		if _, ok := r.nodes[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}
		if _, ok := batch[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}
		batch[name] = n
	}

	for name, n := range batch {
		r.nodes[name] = n
	}
	return nil
}

func (r *Registry[A, R]) Get(name string) (*chain.Node[A, R], error) {
	n, ok := r.nodes[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return n, nil
}

// Apply links every route of l. All names are resolved first, so an unknown
// name leaves every link untouched.
func Apply[A, R any](l Layout, r *Registry[A, R]) error {
	resolved := make([][]*chain.Node[A, R], 0, len(l.Routes))
	for _, route := range l.Routes {
		nodes := make([]*chain.Node[A, R], 0, len(route))
		for _, name := range route {
			n, err := r.Get(name)
			if err != nil {
				return err
			}
			nodes = append(nodes, n)
		}
		resolved = append(resolved, nodes)
	}

	for _, nodes := range resolved {
		chain.LinkAll(nodes...)
	}
	return nil
}
