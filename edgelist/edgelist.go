// Package edgelist reads edge lists for BuildGraph from text, YAML and TOML
// documents, and ships the demonstration graph used by the lvpath CLI.
//
// Text format, one edge per line, '#' starts a comment:
//
//	# from to length
//	0 2 1
//	0 3 4
//
// YAML format:
//
//	edges:
//	  - {from: 0, to: 2, length: 1}
//
// TOML format:
//
//	[[edges]]
//	from = 0
//	to = 2
//	length = 1
//
// Decoding only checks syntax. Semantic checks (negative indices,
// non-positive lengths) are left to core.BuildGraph.
package edgelist

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvpath/core"
)

// ErrMalformed indicates a document that cannot be decoded into edges.
var ErrMalformed = errors.New("edgelist: malformed input")

// ErrUnknownFormat indicates an unsupported format name.
var ErrUnknownFormat = errors.New("edgelist: unknown format")

// Format identifies an edge list encoding.
type Format int

const (
	// FormatText is whitespace-separated "from to length" lines.
	FormatText Format = iota
	// FormatYAML is a YAML document with an "edges" sequence.
	FormatYAML
	// FormatTOML is a TOML document with an [[edges]] array of tables.
	FormatTOML
)

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "text", "yaml"/"yml" or "toml" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks a Format from the file extension.
// Anything that is not .yaml, .yml or .toml is read as text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// record is the YAML/TOML shape of one edge.
type record struct {
	From   *int   `yaml:"from" toml:"from"`
	To     *int   `yaml:"to" toml:"to"`
	Length *int64 `yaml:"length" toml:"length"`
}

// document is the YAML/TOML top level.
type document struct {
	Edges []record `yaml:"edges" toml:"edges"`
}

// Decode reads every edge from r in the given format.
func Decode(r io.Reader, f Format) ([]core.Edge, error) {
	switch f {
	case FormatText:
		return decodeText(r)
	case FormatYAML:
		return decodeYAML(r)
	case FormatTOML:
		return decodeTOML(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Load opens path and decodes it with the format implied by its extension.
func Load(path string) ([]core.Edge, error) {
	return LoadFormat(path, FormatFromPath(path))
}

// LoadFormat opens path and decodes it with f.
func LoadFormat(path string, f Format) ([]core.Edge, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	edges, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return edges, nil
}

// toEdges converts decoded records, requiring all three fields.
func toEdges(recs []record) ([]core.Edge, error) {
	edges := make([]core.Edge, 0, len(recs))
	for i, rec := range recs {
		if rec.From == nil || rec.To == nil || rec.Length == nil {
			return nil, fmt.Errorf("%w: edge #%d needs from, to and length", ErrMalformed, i)
		}
		edges = append(edges, core.Edge{From: *rec.From, To: *rec.To, Length: *rec.Length})
	}

	return edges, nil
}
