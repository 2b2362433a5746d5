// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package growth implements reading
// of pangenome growth tables
// produced by panacus.
//
// A growth table is a tab-delimited file (TSV)
// with a comment line naming the panacus command
// that generated it,
// two header rows with the coverage and quorum thresholds
// of each column,
// and one row per sample
// with the cumulative counts of each column.
//
// Here is an example file:
//
//	# this file was generated by panacus histgrowth -c node graph.gfa
//	coverage	1	1	2
//	quorum	1	2	1
//	1	1000	800	950
//	2	1500	900	1300
//	3	1800	950	1500
package growth

import (
	"bufio"
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ErrBadHeader is returned when the first line of a file
// does not have the panacus header marker.
var ErrBadHeader = errors.New("wrong header")

// ErrNotGrowth is returned when a file was generated
// by a panacus command that does not produce a growth table.
var ErrNotGrowth = errors.New("not a growth table")

var headerMarker = regexp.MustCompile(`^#.+panacus (\S+) (.+)`)

// Commands that produce growth tables.
var growthCommands = []string{
	"growth",
	"histgrowth",
	"ordered-histgrowth",
}

// A Header contains the provenance metadata
// of a growth table:
// the panacus command that generated it
// and its argument list.
type Header struct {
	Command string
	Args    []string
}

// ParseHeader extracts the provenance metadata
// from the first line of a growth table file.
func ParseHeader(line string) (Header, error) {
	m := headerMarker.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if m == nil {
		return Header{}, ErrBadHeader
	}
	h := Header{
		Command: m[1],
		Args:    strings.Fields(m[2]),
	}
	if !slices.Contains(growthCommands, h.Command) {
		return Header{}, ErrNotGrowth
	}
	return h, nil
}

// CountType returns the unit counted by the table,
// as indicated by the -c, or --count, argument
// of the generating command.
// If the argument is absent it defaults to "node".
func (h Header) CountType() string {
	for i, a := range h.Args {
		if a != "-c" && a != "--count" {
			continue
		}
		if i+1 < len(h.Args) {
			return h.Args[i+1]
		}
	}
	return "node"
}

// A Pair is a coverage-quorum threshold combination
// that defines one column of a growth table.
type Pair struct {
	Coverage int
	Quorum   int
}

// A Table is a pangenome growth table:
// an ordered collection of samples,
// each with a cumulative count
// per coverage-quorum column.
type Table struct {
	samples []string
	pairs   []Pair
	data    map[Pair][]float64
}

// ReadTSV reads a growth table from a TSV file,
// validating its provenance header.
// Columns are sorted by quorum
// and then by coverage.
func ReadTSV(r io.Reader) (*Table, Header, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if line == "" && err != nil {
		return nil, Header{}, fmt.Errorf("while reading header: %v", err)
	}
	h, err := ParseHeader(line)
	if err != nil {
		return nil, Header{}, err
	}

	tsv := csv.NewReader(br)
	tsv.Comma = '\t'

	cov, err := readThresholds(tsv, "coverage")
	if err != nil {
		return nil, Header{}, err
	}
	quo, err := readThresholds(tsv, "quorum")
	if err != nil {
		return nil, Header{}, err
	}
	if len(quo) != len(cov) {
		return nil, Header{}, fmt.Errorf("got %d quorum values, want %d", len(quo), len(cov))
	}

	t := &Table{
		data: make(map[Pair][]float64, len(cov)),
	}
	for i := range cov {
		p := Pair{Coverage: cov[i], Quorum: quo[i]}
		if _, dup := t.data[p]; dup {
			return nil, Header{}, fmt.Errorf("duplicated column (%d, %d)", p.Coverage, p.Quorum)
		}
		t.pairs = append(t.pairs, p)
		t.data[p] = nil
	}

	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, Header{}, fmt.Errorf("on row %d: %v", pe.Line, pe.Err)
			}
			return nil, Header{}, fmt.Errorf("while reading data: %v", err)
		}
		ln, _ := tsv.FieldPos(0)

		t.samples = append(t.samples, row[0])
		for i, p := range t.pairs {
			v, err := strconv.ParseFloat(row[i+1], 64)
			if err != nil {
				return nil, Header{}, fmt.Errorf("on row %d: column (%d, %d): %v", ln, p.Coverage, p.Quorum, err)
			}
			t.data[p] = append(t.data[p], v)
		}
	}
	if len(t.samples) == 0 {
		return nil, Header{}, fmt.Errorf("while reading data: %v", io.EOF)
	}

	slices.SortStableFunc(t.pairs, func(a, b Pair) int {
		if c := cmp.Compare(a.Quorum, b.Quorum); c != 0 {
			return c
		}
		return cmp.Compare(a.Coverage, b.Coverage)
	})

	return t, h, nil
}

func readThresholds(tsv *csv.Reader, label string) ([]int, error) {
	row, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading %s row: %v", label, err)
	}
	if len(row) < 2 {
		return nil, fmt.Errorf("on %s row: expecting at least one column", label)
	}

	vals := make([]int, 0, len(row)-1)
	for i, f := range row[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("on %s row: column %d: %v", label, i+1, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// Columns returns the coverage-quorum pairs of the table,
// sorted by quorum and then by coverage.
func (t *Table) Columns() []Pair {
	return slices.Clone(t.pairs)
}

// Column returns the count of each sample
// for a given coverage-quorum pair,
// in the sample order of the source file.
func (t *Table) Column(p Pair) []float64 {
	return slices.Clone(t.data[p])
}

// Samples returns the sample labels of the table,
// in the order of the source file.
func (t *Table) Samples() []string {
	return slices.Clone(t.samples)
}

// Rows returns the number of samples in the table.
func (t *Table) Rows() int {
	return len(t.samples)
}
