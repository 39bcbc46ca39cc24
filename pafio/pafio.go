// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pafio decodes the pairwise alignment format (PAF) records
// that describe read-to-contig and read-to-read overlaps (spec.md §6).
// PAF decoding is named an external collaborator in spec.md §1, but no
// library in the retrieval pack reads it, so this is a minimal,
// dependency-free parser in the idiom of loopy's own blasrHit decoder
// (github.com/kortschak/loopy, loopy.go's newBlasrHit): fixed field
// positions, panic-and-recover for malformed lines, converted to an
// error at the package boundary.
package pafio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kortschak/scara/scaraerr"
)

const (
	qNameField = iota
	qLenField
	qStartField
	qEndField
	strandField
	tNameField
	tLenField
	tStartField
	tEndField
	nMatchField
	alnLenField
	mapQField

	minFields
)

// Record is a single decoded PAF line. Fields beyond the twelve
// mandatory PAF columns (SAM-style optional tags) are ignored, per
// spec.md §6 ("Unknown fields ignored").
type Record struct {
	QName string
	QLen  int
	QStart, QEnd int

	// Reverse is true for a '-' strand alignment (query maps to the
	// reverse complement of the target), false for '+'.
	Reverse bool

	TName string
	TLen  int
	TStart, TEnd int

	NMatch int
	AlnLen int
}

// Reader decodes PAF records from an underlying stream, one per line.
type Reader struct {
	file string
	line int
	sc   *bufio.Scanner
}

// NewReader returns a Reader that decodes PAF records from r. name is
// used only to annotate errors.
func NewReader(r io.Reader, name string) *Reader {
	return &Reader{file: name, sc: bufio.NewScanner(r)}
}

// Read returns the next record, or io.EOF when the stream is
// exhausted.
func (d *Reader) Read() (Record, error) {
	for d.sc.Scan() {
		d.line++
		line := d.sc.Text()
		if line == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return Record{}, &scaraerr.ParseError{File: d.file, Line: d.line, Err: err}
		}
		return rec, nil
	}
	if err := d.sc.Err(); err != nil {
		return Record{}, &scaraerr.ParseError{File: d.file, Line: d.line, Err: err}
	}
	return Record{}, io.EOF
}

// ReadAll decodes every record in the stream.
func (d *Reader) ReadAll() ([]Record, error) {
	var recs []Record
	for {
		rec, err := d.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}

func parseLine(line string) (rec Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = v
			default:
				err = fmt.Errorf("pafio: %v", v)
			}
		}
	}()

	fields := strings.Split(line, "\t")
	if len(fields) < minFields {
		return Record{}, fmt.Errorf("pafio: expected at least %d tab-separated fields, got %d", minFields, len(fields))
	}

	rec = Record{
		QName:  fields[qNameField],
		QLen:   mustAtoi(fields[qLenField]),
		QStart: mustAtoi(fields[qStartField]),
		QEnd:   mustAtoi(fields[qEndField]),

		TName:  fields[tNameField],
		TLen:   mustAtoi(fields[tLenField]),
		TStart: mustAtoi(fields[tStartField]),
		TEnd:   mustAtoi(fields[tEndField]),

		NMatch: mustAtoi(fields[nMatchField]),
		AlnLen: mustAtoi(fields[alnLenField]),
	}
	switch fields[strandField] {
	case "+":
		rec.Reverse = false
	case "-":
		rec.Reverse = true
	default:
		return Record{}, fmt.Errorf("pafio: invalid strand field %q", fields[strandField])
	}
	return rec, nil
}

func mustAtoi(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return i
}
