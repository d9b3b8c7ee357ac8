// Package formats reads model files into plain geometry.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/softraster/pkg/encoding"
)

// OBJ format errors.
var (
	ErrInvalidOBJ       = errors.New("invalid OBJ data")
	ErrOBJIndexRange    = errors.New("OBJ face index out of range")
	ErrOBJEmptyGeometry = errors.New("OBJ has no vertices or faces")
)

// OBJ is the geometry of a Wavefront OBJ file: positions and triangles with
// 0-based vertex indices. Name comes from the first "o" statement and is
// always UTF-8. Texture coordinates, normals, groups and materials
// are skipped.
type OBJ struct {
	Name      string
	Vertices  [][3]float64
	Triangles [][3]int
}

// ParseOBJ parses OBJ text. Polygons with more than three corners are split
// into a triangle fan. Negative indices count back from the last vertex read.
func ParseOBJ(data []byte) (*OBJ, error) {
	return ReadOBJ(bytes.NewReader(data))
}

// ReadOBJ parses OBJ text from r.
func ReadOBJ(r io.Reader) (*OBJ, error) {
	obj := &OBJ{}
	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			obj.Vertices = append(obj.Vertices, v)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners: %w", lineNo, ErrInvalidOBJ)
			}
			corners := make([]int, 0, len(fields)-1)
			for _, f := range fields[1:] {
				idx, err := parseFaceIndex(f, len(obj.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				corners = append(corners, idx)
			}
			for i := 1; i+1 < len(corners); i++ {
				obj.Triangles = append(obj.Triangles, [3]int{corners[0], corners[i], corners[i+1]})
			}

		case "o":
			if obj.Name == "" && len(fields) > 1 {
				obj.Name = encoding.DecodeName([]byte(strings.Join(fields[1:], " ")))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	if len(obj.Vertices) == 0 || len(obj.Triangles) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOBJ, ErrOBJEmptyGeometry)
	}
	return obj, nil
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

func parseVertex(fields []string) ([3]float64, error) {
	var v [3]float64
	if len(fields) < 3 {
		return v, fmt.Errorf("vertex needs 3 coordinates, got %d: %w", len(fields), ErrInvalidOBJ)
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return v, fmt.Errorf("vertex coordinate %q: %w", fields[i], ErrInvalidOBJ)
		}
		v[i] = f
	}
	return v, nil
}

// parseFaceIndex resolves the position index of a face corner such as
// "7", "7/2" or "7/2/3" to a 0-based index.
func parseFaceIndex(corner string, vertexCount int) (int, error) {
	pos := corner
	if i := strings.IndexByte(corner, '/'); i >= 0 {
		pos = corner[:i]
	}
	n, err := strconv.Atoi(pos)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("face index %q: %w", corner, ErrInvalidOBJ)
	}
	idx := n - 1
	if n < 0 {
		idx = vertexCount + n
	}
	if idx < 0 || idx >= vertexCount {
		return 0, fmt.Errorf("face index %d with %d vertices: %w", n, vertexCount, ErrOBJIndexRange)
	}
	return idx, nil
}
