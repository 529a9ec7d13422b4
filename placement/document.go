package placement

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mecalloc/core"
)

// Sentinel errors for placement documents.
var (
	// ErrDecode indicates malformed YAML or unknown fields.
	ErrDecode = errors.New("placement: cannot decode document")

	// ErrIDCountMismatch indicates an ID list whose length differs from the matrix.
	ErrIDCountMismatch = errors.New("placement: ID count does not match matrix")

	// ErrNilHyperGraph indicates FromHyperGraph was given nil.
	ErrNilHyperGraph = errors.New("placement: hypergraph is nil")
)

// Document is the in-memory form of a placement file.
type Document struct {
	Name       string
	Vertices   []string
	Placements []string
	Weights    []core.Weight
	Matrix     [][]int
}

// wire is the YAML layout of Document.
type wire struct {
	Name       string    `yaml:"name,omitempty"`
	Vertices   []string  `yaml:"vertices,omitempty,flow"`
	Placements []string  `yaml:"placements,omitempty,flow"`
	Weights    []decimal `yaml:"weights,flow"`
	Matrix     []row     `yaml:"matrix"`
}

type row []int

// MarshalYAML renders every matrix row on one line.
func (r row) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range r {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(c)})
	}

	return n, nil
}

// decimal carries a weight as a bare YAML number.
type decimal struct{ core.Weight }

// MarshalYAML implements yaml.Marshaler.
func (d decimal) MarshalYAML() (interface{}, error) {
	text := d.Weight.String()
	tag := "!!int"
	if strings.Contains(text, ".") {
		tag = "!!float"
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *decimal) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: weight must be a scalar: %w", value.Line, core.ErrBadWeight)
	}
	w, err := core.ParseWeight(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	d.Weight = w

	return nil
}

// Decode reads one document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var in wire
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, core.ErrBadWeight) {
			return nil, fmt.Errorf("Decode: %w", err)
		}

		return nil, fmt.Errorf("Decode: %v: %w", err, ErrDecode)
	}

	doc := &Document{
		Name:       in.Name,
		Vertices:   in.Vertices,
		Placements: in.Placements,
		Weights:    make([]core.Weight, len(in.Weights)),
		Matrix:     make([][]int, len(in.Matrix)),
	}
	for i, w := range in.Weights {
		doc.Weights[i] = w.Weight
	}
	for i, r := range in.Matrix {
		doc.Matrix[i] = r
	}

	return doc, nil
}

// Load decodes the document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return doc, nil
}

// Encode writes d to w as YAML.
func (d *Document) Encode(w io.Writer) error {
	out := wire{
		Name:       d.Name,
		Vertices:   d.Vertices,
		Placements: d.Placements,
		Weights:    make([]decimal, len(d.Weights)),
		Matrix:     make([]row, len(d.Matrix)),
	}
	for i, wt := range d.Weights {
		out.Weights[i] = decimal{wt}
	}
	for i, r := range d.Matrix {
		out.Matrix[i] = r
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return enc.Close()
}

// Save writes d to path, replacing any existing file.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}
	if err := d.Encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	return f.Close()
}
