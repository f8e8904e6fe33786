// Command gqss searches a query sequence against FASTQ reads using the
// EDNAFULL-scored Smith-Waterman local alignment.
//
// Usage:
//
//	gqss [command] [options]
//
// Commands:
//
//	search      Align a query against every read in a FASTQ file
//	align       Align two ad hoc sequences
//	revcomp     Reverse complement a sequence
//	score       Look up an EDNAFULL substitution score
//	version     Show version information
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/gqss-bio/gqss-go/internal/report"
	"github.com/gqss-bio/gqss-go/internal/stats"
	"github.com/gqss-bio/gqss-go/pkg/gqss"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "search":
		searchCmd(os.Args[2:])
	case "align":
		alignCmd(os.Args[2:])
	case "revcomp":
		revcompCmd(os.Args[2:])
	case "score":
		scoreCmd(os.Args[2:])
	case "version":
		fmt.Println(gqss.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gqss - Genomic Query Sequence Search

Usage:
  gqss <command> [options]

Commands:
  search    Align a query against every read in a FASTQ file
  align     Align two ad hoc sequences
  revcomp   Reverse complement a sequence
  score     Look up an EDNAFULL substitution score
  version   Show version information
  help      Show this help message

Use "gqss <command> -h" for more information about a command.`)
}

func searchCmd(args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	queryFile := fs.String("query", "", "FASTA file holding the query sequence")
	gapPenalty := fs.Int64("gap-penalty", gqss.DefaultGapPenalty, "Linear gap penalty")
	format := fs.String("format", "tsv", "Output format: tsv or pair")
	output := fs.String("output", "", `Output file, "-" for stdout (default: <fastq>.sw.<format>)`)
	minScore := fs.Int64("min-score", 0, "Report a read only when its best orientation reaches this score")
	progress := fs.Bool("progress", false, "Show a progress bar on stderr")
	fs.Parse(args)

	if *queryFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -query is required")
		fs.Usage()
		os.Exit(1)
	}
	if *gapPenalty < 0 {
		fmt.Fprintln(os.Stderr, "Error: -gap-penalty must be non-negative")
		os.Exit(1)
	}
	if *format != "tsv" && *format != "pair" {
		fmt.Fprintf(os.Stderr, "Error: unknown output format: %s\n", *format)
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one FASTQ file is required")
		fs.Usage()
		os.Exit(1)
	}

	fastqPath := fs.Arg(0)
	if !strings.Contains(fastqPath, ".fq") && !strings.Contains(fastqPath, ".fastq") {
		fmt.Fprintf(os.Stderr, "Error: could not find expected FASTQ file: %s\n", fastqPath)
		os.Exit(1)
	}

	query, err := gqss.ReadQuery(*queryFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading query: %v\n", err)
		os.Exit(1)
	}

	rcQuery, err := query.ReverseComplement()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reverse complementing query: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Query Sequence Identifier: %s\n", query.Header())

	outPath := *output
	if outPath == "" {
		outPath = fastqPath + ".sw." + *format
	}

	var out io.Writer
	if outPath == "-" {
		out = os.Stdout
	} else {
		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f

		if *format == "pair" {
			fmt.Fprintf(os.Stderr, "Writing pair-wise sequence alignments to %q\n", outPath)
		} else {
			fmt.Fprintf(os.Stderr, "Writing tab separated values to %q\n", outPath)
		}
	}
	w := bufio.NewWriter(out)

	in, err := os.Open(fastqPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening FASTQ file: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	var reader io.Reader = in
	var pbs *mpb.Progress
	var bar *mpb.Bar
	if *progress {
		info, err := in.Stat()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
		bar = pbs.AddBar(info.Size(),
			mpb.PrependDecorators(
				decor.Name("aligning: ", decor.WC{W: len("aligning: "), C: decor.DindentRight}),
				decor.Name("", decor.WCSyncSpaceR),
				decor.CountersKibiByte("% .2f / % .2f", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(
				decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
				decor.EwmaETA(decor.ET_STYLE_GO, 1024),
				decor.OnComplete(decor.Name(""), ". done"),
			),
		)

		pr := bar.ProxyReader(in)
		defer pr.Close()
		reader = pr
	}

	var pw *report.PairWriter
	if *format == "pair" {
		pw = &report.PairWriter{Program: "gqss", Matrix: "NUC.4.4", Rundate: time.Now()}
	} else {
		if err := report.WriteTSVHeader(w); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}

	opts := gqss.Options{GapPenalty: *gapPenalty}
	run := stats.NewRunStats()

	err = gqss.StreamFASTQ(reader, func(rec *gqss.FastqRecord) error {
		read, err := gqss.NewSequenceWithID(rec.Bases, rec.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping read %s: %v\n", rec.ID, err)
			run.Skip()
			return nil
		}
		if rec.Quality.Len() != len(rec.Bases) {
			fmt.Fprintf(os.Stderr, "Warning: skipping read %s: %d quality scores for %d bases\n",
				rec.ID, rec.Quality.Len(), len(rec.Bases))
			run.Skip()
			return nil
		}

		forward, err := gqss.Align(query, read, opts)
		if err != nil {
			return err
		}
		reverse, err := gqss.Align(rcQuery, read, opts)
		if err != nil {
			return err
		}

		run.Record(rec.ID, forward.Score, reverse.Score, rec.Quality.Mean())

		best := forward.Score
		if reverse.Score > best {
			best = reverse.Score
		}
		if best < *minScore {
			return nil
		}

		forwardRow, err := report.BuildRow(query.Header(), rec.Header(), forward, rec.Quality, *gapPenalty)
		if err != nil {
			return err
		}
		reverseRow, err := report.BuildRow(report.ReverseComplementPrefix+query.Header(), rec.Header(), reverse, rec.Quality, *gapPenalty)
		if err != nil {
			return err
		}

		if *format == "pair" {
			if err := pw.WriteBlock(w, forwardRow); err != nil {
				return err
			}
			if err := pw.WriteBlock(w, reverseRow); err != nil {
				return err
			}
		} else {
			if err := report.WriteTSVRow(w, forwardRow); err != nil {
				return err
			}
			if err := report.WriteTSVRow(w, reverseRow); err != nil {
				return err
			}
		}
		run.Emitted += 2
		return nil
	})

	if *progress {
		if err != nil {
			bar.Abort(true)
		}
		pbs.Wait()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing FASTQ: %v\n", err)
		os.Exit(1)
	}

	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "[%11.2f seconds]: %d sequences parsed\n",
		run.Elapsed().Seconds(), run.Reads+run.Skipped)
	fmt.Fprintln(os.Stderr, run)
}

func alignCmd(args []string) {
	fs := flag.NewFlagSet("align", flag.ExitOnError)
	seq1 := fs.String("seq1", "", "Query sequence")
	seq2 := fs.String("seq2", "", "Read sequence")
	gapPenalty := fs.Int64("gap-penalty", gqss.DefaultGapPenalty, "Linear gap penalty")
	format := fs.String("format", "pair", "Output format: pair or tsv")
	fs.Parse(args)

	if *seq1 == "" || *seq2 == "" {
		fmt.Fprintln(os.Stderr, "Error: Both -seq1 and -seq2 are required")
		fs.Usage()
		os.Exit(1)
	}
	if *gapPenalty < 0 {
		fmt.Fprintln(os.Stderr, "Error: -gap-penalty must be non-negative")
		os.Exit(1)
	}
	if *format != "tsv" && *format != "pair" {
		fmt.Fprintf(os.Stderr, "Error: unknown output format: %s\n", *format)
		os.Exit(1)
	}

	query, err := gqss.NewSequenceWithID(*seq1, "seq1")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating sequence 1: %v\n", err)
		os.Exit(1)
	}

	read, err := gqss.NewSequenceWithID(*seq2, "seq2")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating sequence 2: %v\n", err)
		os.Exit(1)
	}

	res, err := gqss.Align(query, read, gqss.Options{GapPenalty: *gapPenalty})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error aligning sequences: %v\n", err)
		os.Exit(1)
	}

	row, err := report.BuildRow(query.Header(), read.Header(), res, "", *gapPenalty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *format == "pair" {
		pw := &report.PairWriter{Program: "gqss", Matrix: "NUC.4.4", Rundate: time.Now()}
		if err := pw.WriteBlock(os.Stdout, row); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := report.WriteTSVHeader(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		if err := report.WriteTSVRow(os.Stdout, row); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}
}

func revcompCmd(args []string) {
	fs := flag.NewFlagSet("revcomp", flag.ExitOnError)
	file := fs.String("file", "", "FASTA file to reverse complement")
	seq := fs.String("seq", "", "Sequence string to reverse complement")
	fs.Parse(args)

	if *file == "" && *seq == "" {
		fmt.Fprintln(os.Stderr, "Error: Either -file or -seq is required")
		fs.Usage()
		os.Exit(1)
	}

	if *seq != "" {
		s, err := gqss.NewSequence(*seq)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating sequence: %v\n", err)
			os.Exit(1)
		}
		rc, err := s.ReverseComplement()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reverse complementing: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(rc.Bases)
		return
	}

	sequences, err := gqss.ReadFASTA(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	for _, s := range sequences {
		rc, err := s.ReverseComplement()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reverse complementing %s: %v\n", s.ID, err)
			os.Exit(1)
		}
		fmt.Print(rc.ToFASTA())
	}
}

func scoreCmd(args []string) {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	a := fs.String("a", "", "First symbol")
	b := fs.String("b", "", "Second symbol")
	fs.Parse(args)

	if len(*a) != 1 || len(*b) != 1 {
		fmt.Fprintln(os.Stderr, "Error: -a and -b must each be a single symbol")
		fs.Usage()
		os.Exit(1)
	}

	score, err := gqss.EDNAFULL().Score((*a)[0], (*b)[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(score)
}
