// Package fastx reads the FASTA and FASTQ flavors this tool consumes.
//
// Query files are FASTA with legacy allowances: lines starting with ';' are
// comments and only the first record is used. Read files are strict 4-line
// FASTQ. Both accept CRLF line endings.
package fastx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gqss-bio/gqss-go/internal/sequence"
)

// ReadQuery loads the query sequence from a FASTA file.
func ReadQuery(path string) (*sequence.Sequence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening query file: %w", err)
	}
	defer file.Close()

	seq, err := ParseQuery(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// ParseQuery extracts the first FASTA record from r. Comment lines starting
// with ';' are skipped; the record ends at the next '>' header, at the first
// blank line after the header, or at EOF.
func ParseQuery(r io.Reader) (*sequence.Sequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var id, desc string
	var bases strings.Builder
	inRecord := false

	for scanner.Scan() {
		line := scanner.Text()

		if !inRecord {
			if len(line) == 0 || line[0] == ';' {
				continue
			}
			if line[0] != '>' {
				return nil, fmt.Errorf("expected FASTA header, got %q", line)
			}
			parts := strings.SplitN(line[1:], " ", 2)
			id = parts[0]
			if len(parts) > 1 {
				desc = parts[1]
			}
			inRecord = true
			continue
		}

		if len(line) == 0 || line[0] == '>' {
			break
		}
		if line[0] == ';' {
			continue
		}
		bases.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading query: %w", err)
	}

	if !inRecord {
		return nil, fmt.Errorf("no FASTA record found")
	}
	if bases.Len() == 0 {
		return nil, fmt.Errorf("query record %q has no sequence data", id)
	}

	return sequence.WithMetadata(bases.String(), id, desc)
}

// ReadFASTA reads all sequences from a FASTA file.
func ReadFASTA(path string) ([]*sequence.Sequence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseFASTA(file)
}

// ParseFASTA parses every FASTA record from a reader.
func ParseFASTA(r io.Reader) ([]*sequence.Sequence, error) {
	sequences := make([]*sequence.Sequence, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var currentID, currentDesc string
	var currentBases strings.Builder

	flushSequence := func() error {
		if currentBases.Len() > 0 {
			seq, err := sequence.WithMetadata(currentBases.String(), currentID, currentDesc)
			if err != nil {
				return err
			}
			sequences = append(sequences, seq)
			currentBases.Reset()
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 || line[0] == ';' {
			continue
		}

		if line[0] == '>' {
			if err := flushSequence(); err != nil {
				return nil, err
			}

			parts := strings.SplitN(line[1:], " ", 2)
			currentID = parts[0]
			if len(parts) > 1 {
				currentDesc = parts[1]
			} else {
				currentDesc = ""
			}
		} else {
			currentBases.WriteString(line)
		}
	}

	if err := flushSequence(); err != nil {
		return nil, err
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return sequences, nil
}
