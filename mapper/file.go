package mapper

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomforge/atomtype/typing"
)

// File remaps origin categories according to a text specification that
// groups origin type *names* into destination groups. Immutable after
// construction.
type File struct {
	originNames  []string
	originToDest []int
	destNames    []string
}

// NewFileMapper parses a mapping specification from in.
//
// originNames is the origin vocabulary, supplied positionally — normally
// the upstream typer's TypeNames(). Each non-blank line of the
// specification is one destination group: a whitespace-separated list of
// origin names; line order defines destination ids (0-based). The first
// token of each line doubles as the destination's display name.
//
// Strictness (prevents silent feature-space corruption): a blank line is
// ErrEmptyGroup, a name missing from originNames is ErrUnknownName, a
// name placed in two groups is ErrDuplicateOrigin, and a specification
// with no lines at all is ErrEmptySpec. Origin names absent from every
// group stay typing.Unmapped.
//
// Complexity: linear in the specification size.
func NewFileMapper(in io.Reader, originNames []string) (*File, error) {
	nameToOrigin := make(map[string]int, len(originNames))
	for id, name := range originNames {
		if prev, ok := nameToOrigin[name]; ok {
			return nil, fmt.Errorf(
				"%w: origin name %q at positions %d and %d", ErrDuplicateOrigin, name, prev, id)
		}
		nameToOrigin[name] = id
	}

	f := &File{
		originNames:  append([]string(nil), originNames...),
		originToDest: make([]int, len(originNames)),
	}
	for i := range f.originToDest {
		f.originToDest[i] = typing.Unmapped
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: line %d", ErrEmptyGroup, lineNo)
		}

		dest := len(f.destNames)
		for _, name := range fields {
			origin, ok := nameToOrigin[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q on line %d", ErrUnknownName, name, lineNo)
			}
			if f.originToDest[origin] != typing.Unmapped {
				return nil, fmt.Errorf("%w: %q on line %d", ErrDuplicateOrigin, name, lineNo)
			}
			f.originToDest[origin] = dest
		}
		f.destNames = append(f.destNames, fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mapper: reading mapping specification: %w", err)
	}
	if len(f.destNames) == 0 {
		return nil, ErrEmptySpec
	}

	return f, nil
}

// NewFileMapperFromPath opens path and parses it with NewFileMapper.
func NewFileMapperFromPath(path string, originNames []string) (*File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapper: opening mapping specification: %w", err)
	}
	defer in.Close()

	return NewFileMapper(in, originNames)
}

// NumTypes returns the number of destination groups in file order.
func (f *File) NumTypes() int { return len(f.destNames) }

// MapType returns the destination id for origin, or typing.Unmapped for
// origins outside the origin vocabulary or absent from every group.
func (f *File) MapType(origin int) int {
	if origin < 0 || origin >= len(f.originToDest) {
		return typing.Unmapped
	}

	return f.originToDest[origin]
}

// TypeNames returns the destination display names (the first token of
// each group line), one per destination id. The returned slice is a copy.
func (f *File) TypeNames() []string {
	return append([]string(nil), f.destNames...)
}

// OriginNames returns the origin vocabulary this mapper was built
// against, as a copy.
func (f *File) OriginNames() []string {
	return append([]string(nil), f.originNames...)
}
