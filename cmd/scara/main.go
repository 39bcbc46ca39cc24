// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// scara scaffolds a set of contigs using long reads and their
// pairwise approximate alignments to the contigs and to each other,
// filling inter-contig gaps with read-derived sequence.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kortschak/scara/materialize"
	"github.com/kortschak/scara/minimap2"
	"github.com/kortschak/scara/overlap"
	"github.com/kortschak/scara/pafio"
	"github.com/kortschak/scara/pathgen"
	"github.com/kortschak/scara/scaffold"
	"github.com/kortschak/scara/scaraconfig"
	"github.com/kortschak/scara/scaraerr"
	"github.com/kortschak/scara/scgraph"
	"github.com/kortschak/scara/seqstore"
)

var (
	readsFile    = flag.String("reads", "", "input long read fasta/fastq file (required, .gz optional)")
	contigsFile  = flag.String("contigs", "", "input contig fasta file (required, .gz optional)")
	r2cFile      = flag.String("r2c", "", "read-to-contig overlaps PAF file")
	r2rFile      = flag.String("r2r", "", "read-to-read overlaps PAF file")

	minimap2Path = flag.String("minimap2", "", "path to minimap2; if set and -r2c/-r2r are unset, run it to generate overlaps")
	procs        = flag.Int("procs", 1, "number of minimap2 threads")

	containedFrac   = flag.Float64("contained-frac", 0, "containment threshold (default 0.90)")
	minBlock        = flag.Int("min-block", 0, "minimum alignment block length (default 500)")
	minSI           = flag.Float64("min-si", 0, "minimum sequence identity (default 0.75)")
	minMCPaths      = flag.Int("min-mc-paths", 0, "Monte-Carlo path floor (default 100)")
	minPathsInGroup = flag.Int("min-paths-in-group", 0, "weak-group cutoff (default 3)")
	lengthTolerance = flag.Int("length-tolerance", 0, "path-group length tolerance in bases (default 200)")
	maxWalkNodes    = flag.Int("max-walk-nodes", 0, "path length cap (default 64)")
	rngSeed         = flag.Int64("rng-seed", 0, "Monte-Carlo RNG seed (default 1)")

	debugLevel = flag.Int("debug-level", int(scaraconfig.Info), "diagnostic verbosity: 0=SILENT 1=INFO 2=VERBOSE 3=DEBUG")

	outFile = flag.String("out", "", "output fasta file name (default stdout)")
	errFile = flag.String("err", "", "diagnostic output file name (default stderr)")

	multithreading = flag.Bool("multithreading", false, "reserved; has no effect on core algorithm output (spec.md §5)")
)

func main() {
	flag.Parse()
	if *readsFile == "" || *contigsFile == "" {
		fmt.Fprintln(os.Stderr, "invalid argument: must have reads and contigs set")
		flag.Usage()
		os.Exit(1)
	}

	if *errFile != "" {
		w, err := os.Create(*errFile)
		if err != nil {
			log.Fatalf("failed to create diagnostic file: %v", err)
		}
		defer w.Close()
		log.SetOutput(w)
	}
	outStream := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("failed to create out file: %v", err)
		}
		defer f.Close()
		outStream = f
	}
	_ = multithreading

	cfg := scaraconfig.Default()
	if *containedFrac != 0 {
		cfg.ContainedFrac = *containedFrac
	}
	if *minBlock != 0 {
		cfg.MinBlock = *minBlock
	}
	if *minSI != 0 {
		cfg.MinSI = *minSI
	}
	if *minMCPaths != 0 {
		cfg.MinMCPaths = *minMCPaths
	}
	if *minPathsInGroup != 0 {
		cfg.MinPathsinGroup = *minPathsInGroup
	}
	if *lengthTolerance != 0 {
		cfg.LengthTolerance = *lengthTolerance
	}
	if *maxWalkNodes != 0 {
		cfg.MaxWalkNodes = *maxWalkNodes
	}
	if *rngSeed != 0 {
		cfg.RNGSeed = *rngSeed
	}
	cfg.DebugLevel = scaraconfig.DebugLevel(*debugLevel)

	// parse
	info(cfg, "parsing input sequences and overlaps")
	contigs, err := seqstore.Load(*contigsFile)
	if err != nil {
		log.Fatalf("failed to load contigs: %v", err)
	}
	reads, err := seqstore.Load(*readsFile)
	if err != nil {
		log.Fatalf("failed to load reads: %v", err)
	}
	if cfg.DebugLevel >= scaraconfig.Verbose {
		validateStore(contigs, "contig")
		validateStore(reads, "read")
	}

	r2c, err := loadOrGenerate(*r2cFile, *readsFile, *contigsFile, minimap2.MapPB, cfg)
	if err != nil {
		log.Fatalf("failed to obtain read-to-contig overlaps: %v", err)
	}
	r2r, err := loadOrGenerate(*r2rFile, *readsFile, *readsFile, minimap2.AvaPB, cfg)
	if err != nil {
		log.Fatalf("failed to obtain read-to-read overlaps: %v", err)
	}
	verbose(cfg, "loaded %d contigs, %d reads, %d r2c overlaps, %d r2r overlaps",
		contigs.Len(), reads.Len(), len(r2c), len(r2r))

	// generateGraph
	info(cfg, "building overlap graph")
	g, err := scgraph.Build(contigs, reads, r2c, r2r, cfg)
	if err != nil {
		log.Fatalf("failed to build graph: %v", err)
	}
	verbose(cfg, "graph: %d anchors, %d reads, %d AR edges, %d RR edges, "+
		"%d contained, %d short, %d lowqual, %d zero_ext, %d isolated anchors, %d isolated reads",
		g.Stats.NumAnchors, g.Stats.NumReads, g.Stats.NumAREdges, g.Stats.NumRREdges,
		g.Stats.NumContained, g.Stats.NumShort, g.Stats.NumLowQual, g.Stats.NumZeroExt,
		g.Stats.NumIsolatedAnchors, g.Stats.NumIsolatedReads)
	if cfg.DebugLevel >= scaraconfig.Verbose {
		if cycles := g.Cycles(); len(cycles) > 0 {
			verbose(cfg, "graph contains %d directed cycles (expected: walks guard against revisiting, not graph acyclicity)", len(cycles))
		}
	}

	// cleanupGraph: no-op, per spec.md §4.6.

	// generatePaths
	info(cfg, "generating paths")
	var paths []pathgen.Path
	paths = append(paths, pathgen.MaxOS(g.AnchorNodes, cfg)...)
	paths = append(paths, pathgen.MaxES(g.AnchorNodes, cfg)...)
	paths = append(paths, pathgen.MonteCarlo(g.AnchorNodes, len(paths), cfg)...)
	verbose(cfg, "generated %d paths", len(paths))

	infos := make([]pathgen.Info, len(paths))
	for i, p := range paths {
		infos[i] = pathgen.NewInfo(p)
	}
	scaffold.DumpPathInfos(log.Writer(), infos, cfg)

	// groupAndProcessPaths
	info(cfg, "grouping paths and assembling scaffolds")
	groups := scaffold.Bucket(infos, cfg)
	scaffold.DumpGroups(log.Writer(), groups, cfg)
	groups = scaffold.DiscardWeak(groups, cfg)
	winners := scaffold.Winners(groups)
	chained := scaffold.Chain(winners)
	deduped, err := scaffold.Dedup(chained)
	if err != nil {
		log.Fatalf("scaffold assembly failed: %v", err)
	}
	finalized := scaffold.Finalize(deduped)
	verbose(cfg, "assembled %d scaffolds from %d groups", len(finalized), len(groups))
	if len(finalized) == 0 {
		// Non-fatal per spec.md §7: the driver still emits the
		// unused-contig pass-through below.
		log.Print(&scaraerr.EmptyOutput{})
	}

	// generateSequences
	info(cfg, "materialising sequences")
	if err := materialize.Write(outStream, finalized, contigs); err != nil {
		log.Fatalf("failed to materialise sequences: %v", err)
	}
}

// loadOrGenerate reads PAF overlaps from path if set, or, when
// minimap2Path is configured, runs minimap2 to generate them.
func loadOrGenerate(path, query, target string, preset minimap2.Preset, cfg scaraconfig.Config) ([]*overlap.Overlap, error) {
	var recs []pafio.Record
	var err error
	switch {
	case path != "":
		f, oerr := os.Open(path)
		if oerr != nil {
			return nil, oerr
		}
		defer f.Close()
		recs, err = pafio.NewReader(f, path).ReadAll()
	case *minimap2Path != "":
		recs, err = minimap2.GenerateOverlaps(*minimap2Path, query, target, query+".paf", preset, *procs)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	overlaps := make([]*overlap.Overlap, len(recs))
	for i, r := range recs {
		overlaps[i] = overlap.FromPAF(r)
	}
	return overlaps, nil
}

// validateStore logs every sequence in s that fails seqstore.Validate.
// It is only called at VERBOSE and above, since the check is not on
// the hot path and a well-formed input set pays nothing for it.
func validateStore(s *seqstore.Store, label string) {
	s.Range(func(seq *seqstore.Sequence) {
		if err := seqstore.Validate(seq.ID, seq.Bases); err != nil {
			log.Printf("invalid %s sequence: %v", label, err)
		}
	})
}

func info(cfg scaraconfig.Config, format string, args ...interface{}) {
	if cfg.DebugLevel >= scaraconfig.Info {
		log.Printf(format, args...)
	}
}

func verbose(cfg scaraconfig.Config, format string, args ...interface{}) {
	if cfg.DebugLevel >= scaraconfig.Verbose {
		log.Printf(format, args...)
	}
}
