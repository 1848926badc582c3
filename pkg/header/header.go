// Package header decodes the record IDs written by nway_processing.
package header

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyHeader = errors.New("empty header")
	ErrTokenCount  = errors.New("header does not split into 1 or 3 tokens")
	ErrMarkerOrder = errors.New("_Blast marker before _Nway marker")
	ErrNoSpecies   = errors.New("call header without species name")
)

// Element is the consensus record of a locus file.
type Element struct {
	ID string
}

// Call is one species' pair of genotype calls.
type Call struct {
	Species string
	Nway    string
	Blast   string
}

func (c *Call) Symbol() Symbol {
	return Reduce(c.Blast)
}

// Record is a decoded header: exactly one of Element and Call is set.
type Record struct {
	Element *Element
	Call    *Call
}

func (r Record) IsElement() bool {
	return r.Element != nil
}

// Tokenize splits id before every NwayMarker and BlastMarker occurrence.
// The marker's leading underscore is dropped; the label stays with its token.
func Tokenize(id string) []string {
	var (
		tokens []string
		start  int
	)
	for i := 0; i < len(id); i++ {
		if strings.HasPrefix(id[i:], NwayMarker) || strings.HasPrefix(id[i:], BlastMarker) {
			tokens = append(tokens, id[start:i])
			start = i + 1
		}
	}
	return append(tokens, id[start:])
}

// Decode parses a FASTA record ID into an Element or a Call.
func Decode(id string) (Record, error) {
	if id == "" {
		return Record{}, ErrEmptyHeader
	}
	tokens := Tokenize(id)
	switch len(tokens) {
	case 1:
		return Record{Element: &Element{ID: tokens[0]}}, nil
	case 3:
		if !strings.HasPrefix(tokens[1], NwayMarker[1:]) || !strings.HasPrefix(tokens[2], BlastMarker[1:]) {
			return Record{}, fmt.Errorf("%w: %q", ErrMarkerOrder, id)
		}
		if tokens[0] == "" {
			return Record{}, fmt.Errorf("%w: %q", ErrNoSpecies, id)
		}
		return Record{
			Call: &Call{
				Species: tokens[0],
				Nway:    tokens[1],
				Blast:   tokens[2],
			},
		}, nil
	default:
		return Record{}, fmt.Errorf("%w: %q has %d", ErrTokenCount, id, len(tokens))
	}
}
