package fastx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gqss-bio/gqss-go/internal/quality"
)

// maxLineBytes caps a single sequence or quality line. Long-read FASTQ
// carries reads far beyond bufio's default token size.
const maxLineBytes = 16 * 1024 * 1024

// FastqRecord is one read from a FASTQ file.
//
// Bases and Quality are passed through exactly as read; symbol and length
// validation is left to the caller so a bad record can be skipped instead
// of aborting the stream.
type FastqRecord struct {
	ID          string
	Description string
	Bases       string
	Quality     quality.Phred
}

// Header returns the identifier followed by the description, space
// separated.
func (r *FastqRecord) Header() string {
	if r.Description != "" {
		return r.ID + " " + r.Description
	}
	return r.ID
}

// StreamFASTQ reads strict 4-line FASTQ records from r and hands each one to
// fn, without holding the file in memory. An error returned by fn stops the
// stream and is returned unchanged.
func StreamFASTQ(r io.Reader, fn func(*FastqRecord) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNum := 0
	var id, desc, bases string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNum++

		switch (lineNum - 1) % 4 {
		case 0:
			if len(line) == 0 || line[0] != '@' {
				return fmt.Errorf("line %d: expected header starting with @", lineNum)
			}
			parts := strings.SplitN(line[1:], " ", 2)
			id = parts[0]
			if len(parts) > 1 {
				desc = parts[1]
			} else {
				desc = ""
			}
		case 1:
			bases = line
		case 2:
			if len(line) == 0 || line[0] != '+' {
				return fmt.Errorf("line %d: expected '+' line", lineNum)
			}
		case 3:
			rec := &FastqRecord{
				ID:          id,
				Description: desc,
				Bases:       bases,
				Quality:     quality.Phred(line),
			}
			if err := fn(rec); err != nil {
				return err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading FASTQ: %w", err)
	}
	if lineNum%4 != 0 {
		return fmt.Errorf("truncated FASTQ record at line %d", lineNum)
	}
	return nil
}

// ParseFASTQ collects every record from a FASTQ reader.
func ParseFASTQ(r io.Reader) ([]*FastqRecord, error) {
	records := make([]*FastqRecord, 0)
	err := StreamFASTQ(r, func(rec *FastqRecord) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ReadFASTQ reads all records from a FASTQ file.
func ReadFASTQ(path string) ([]*FastqRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseFASTQ(file)
}
