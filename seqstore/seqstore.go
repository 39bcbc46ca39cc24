// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqstore holds the immutable contig and read sequences that
// the scaffolder operates over, keyed by identifier (spec.md §3, C1).
package seqstore

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"

	"github.com/kortschak/scara/scaraerr"
)

// Sequence is an immutable base sequence identified by name. It is
// shared by reference by every Node derived from it (spec.md §3
// Ownership); callers must never mutate Bases after construction.
type Sequence struct {
	ID    string
	Bases string
}

// Len returns the number of bases in the sequence.
func (s *Sequence) Len() int { return len(s.Bases) }

// Store is a read-only, identifier-keyed collection of Sequences,
// populated once at load time and never mutated afterwards.
type Store struct {
	byID map[string]*Sequence
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{byID: make(map[string]*Sequence)}
}

// Get returns the sequence for id and whether it was found.
func (s *Store) Get(id string) (*Sequence, bool) {
	seq, ok := s.byID[id]
	return seq, ok
}

// Len returns the number of sequences held by the store.
func (s *Store) Len() int { return len(s.byID) }

// Range calls fn for every sequence in the store, in an unspecified
// order; callers needing a stable order should collect and sort IDs
// themselves (spec.md §5 Ordering guarantees apply to graph/path code,
// not to this bulk accessor).
func (s *Store) Range(fn func(*Sequence)) {
	for _, seq := range s.byID {
		fn(seq)
	}
}

func (s *Store) add(id, bases string) {
	s.byID[id] = &Sequence{ID: id, Bases: bases}
}

// Put inserts a sequence directly, bypassing file decoding. It exists
// for callers that build a Store from data already in memory, such as
// synthetic fixtures in other packages' tests.
func (s *Store) Put(id, bases string) {
	s.add(id, bases)
}

// LoadFasta reads contig or read sequences from a FASTA file at path,
// transparently decompressing it if the name ends in ".gz". It is a
// thin wrapper over biogo's FASTA decoder (an external collaborator
// per spec.md §1, §6): the sequence data model above is scara's own.
func LoadFasta(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &scaraerr.ParseError{File: path, Err: err}
	}
	defer f.Close()

	r, err := maybeGunzip(path, f)
	if err != nil {
		return nil, &scaraerr.ParseError{File: path, Err: err}
	}

	store := NewStore()
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		store.add(s.ID, lettersToString(s.Seq))
	}
	if err := sc.Error(); err != nil {
		return nil, &scaraerr.ParseError{File: path, Err: err}
	}
	return store, nil
}

// LoadFastq reads read sequences from a FASTQ file at path,
// transparently decompressing it if the name ends in ".gz".
func LoadFastq(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &scaraerr.ParseError{File: path, Err: err}
	}
	defer f.Close()

	r, err := maybeGunzip(path, f)
	if err != nil {
		return nil, &scaraerr.ParseError{File: path, Err: err}
	}

	store := NewStore()
	sc := seqio.NewScanner(fastq.NewReader(r, linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger)))
	for sc.Next() {
		s := sc.Seq().(*linear.QSeq)
		store.add(s.ID, qLettersToString(s.Seq))
	}
	if err := sc.Error(); err != nil {
		return nil, &scaraerr.ParseError{File: path, Err: err}
	}
	return store, nil
}

// Load reads sequences from path, dispatching on file extension
// (".fa"/".fasta"/".fna" for FASTA, ".fq"/".fastq" for FASTQ, either
// optionally followed by ".gz").
func Load(path string) (*Store, error) {
	name := strings.TrimSuffix(path, ".gz")
	switch {
	case strings.HasSuffix(name, ".fq"), strings.HasSuffix(name, ".fastq"):
		return LoadFastq(path)
	default:
		return LoadFasta(path)
	}
}

func maybeGunzip(path string, r io.Reader) (io.Reader, error) {
	if !strings.HasSuffix(path, ".gz") {
		return r, nil
	}
	return gzip.NewReader(r)
}

func lettersToString(l alphabet.Letters) string {
	b := make([]byte, len(l))
	for i, c := range l {
		b[i] = byte(c)
	}
	return string(b)
}

func qLettersToString(l alphabet.QLetters) string {
	b := make([]byte, len(l))
	for i, c := range l {
		b[i] = byte(c.L)
	}
	return string(b)
}

// Complement returns the DNA complement of a single base, preserving
// case and passing ambiguity codes through unchanged except for the
// canonical A/C/G/T/N pairs.
func Complement(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	case 'T':
		return 'A'
	case 'a':
		return 't'
	case 'c':
		return 'g'
	case 'g':
		return 'c'
	case 't':
		return 'a'
	case 'N', 'n':
		return b
	default:
		return b
	}
}

// ReverseComplement returns the reverse complement of s.
func ReverseComplement(s string) string {
	out := make([]byte, len(s))
	n := len(s)
	for i := 0; i < n; i++ {
		out[i] = Complement(s[n-1-i])
	}
	return string(out)
}

// Validate reports an error if any base in s is outside {A,C,G,T,N}
// (case-insensitive). It is not called on the hot path; it exists for
// diagnostic use when -debug-level is at least Verbose.
func Validate(id, s string) error {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T', 'N', 'a', 'c', 'g', 't', 'n':
		default:
			return fmt.Errorf("seqstore: sequence %q contains invalid base %q at offset %d", id, s[i], i)
		}
	}
	return nil
}
