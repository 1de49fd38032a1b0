package graphics

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	shaderMarker   = "#shader"
	vertexMarker   = "vertex"
	fragmentMarker = "fragment"

	maxShaderLine = 1 << 20
)

var (
	// ErrShaderFile is wrapped when the shader file cannot be opened or read.
	ErrShaderFile = errors.New("shader file")
	// ErrOrphanLine is wrapped when a line precedes the first #shader marker.
	ErrOrphanLine = errors.New("line before first #shader marker")
)

// ShaderStage selects which section of a shader file a line belongs to
type ShaderStage int

const (
	StageNone ShaderStage = iota
	StageVertex
	StageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return "none"
}

// Kind returns the GL shader type for the stage, 0 for StageNone
func (s ShaderStage) Kind() uint32 {
	switch s {
	case StageVertex:
		return VERTEX_SHADER
	case StageFragment:
		return FRAGMENT_SHADER
	}
	return 0
}

// ProgramSource holds the two sections of a combined shader file
type ProgramSource struct {
	Vertex   string
	Fragment string
}

// ParseShaderFile reads path and splits it into vertex and fragment sources
func ParseShaderFile(path string) (ProgramSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return ProgramSource{}, fmt.Errorf("%w: %w", ErrShaderFile, err)
	}
	defer f.Close()

	src, err := ParseShader(f)
	if err != nil {
		return ProgramSource{}, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// ParseShader splits r on "#shader vertex" and "#shader fragment" header
// lines. Every other line is appended verbatim (a trailing '\r' included),
// newline-terminated, to the section
// selected by the latest header. A header naming neither stage leaves the
// selection unchanged. A section that never appears comes back empty.
func ParseShader(r io.Reader) (ProgramSource, error) {
	var sections shaderSections
	stage := StageNone

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxShaderLine)
	sc.Split(scanRawLines)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.Contains(line, shaderMarker) {
			switch {
			case strings.Contains(line, vertexMarker):
				stage = StageVertex
			case strings.Contains(line, fragmentMarker):
				stage = StageFragment
			}
			continue
		}
		b := sections.section(stage)
		if b == nil {
			return ProgramSource{}, fmt.Errorf("%w at line %d", ErrOrphanLine, lineNo)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return ProgramSource{}, fmt.Errorf("%w: %w", ErrShaderFile, err)
	}

	return ProgramSource{
		Vertex:   sections.vertex.String(),
		Fragment: sections.fragment.String(),
	}, nil
}

// scanRawLines is bufio.ScanLines without the carriage-return stripping
func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

type shaderSections struct {
	vertex   strings.Builder
	fragment strings.Builder
}

func (s *shaderSections) section(stage ShaderStage) *strings.Builder {
	switch stage {
	case StageVertex:
		return &s.vertex
	case StageFragment:
		return &s.fragment
	}
	return nil
}
