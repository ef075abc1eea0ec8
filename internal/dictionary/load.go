package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strings"
)

// definitionSeparator sits between the part of speech and the definition.
const definitionSeparator = ": "

// MaxLineLength bounds a single source record; longer lines are skipped.
const MaxLineLength = 64 * 1024

var errMalformedLine = errors.New("malformed line")

// LoadReport summarises a bulk load.
type LoadReport struct {
	Loaded     int
	Malformed  int
	Duplicates int
	Truncated  bool // capacity was reached before the source ended
}

// LoadFile opens path and loads it into a new dictionary.
func LoadFile(path string, capacity int, rng *rand.Rand) (*Dictionary, LoadReport, error) {
	log.Printf("[INFO] Loading dictionary from %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("open dictionary source: %w", err)
	}
	defer f.Close()

	d := New(capacity, rng)
	report, err := d.Load(f)
	if err != nil {
		return nil, report, fmt.Errorf("read dictionary source %s: %w", path, err)
	}
	return d, report, nil
}

// Load reads "WORD POS : DEFINITION" records, one per line, appending them
// until the dictionary is full. Malformed and duplicate lines are skipped.
func (d *Dictionary) Load(r io.Reader) (LoadReport, error) {
	var report LoadReport
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return report, readErr
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		lineNo++
		line := strings.TrimRight(raw, "\r\n")
		if strings.TrimSpace(line) == "" {
			if readErr == io.EOF {
				break
			}
			continue
		}
		if d.Full() {
			report.Truncated = true
			break
		}
		if err := d.loadLine(line, &report); err != nil {
			log.Printf("[WARN] Skipping dictionary line %d: %v", lineNo, err)
		}
		if readErr == io.EOF {
			break
		}
	}
	return report, nil
}

// loadLine adds one record, counting it in report.
func (d *Dictionary) loadLine(line string, report *LoadReport) error {
	if len(line) > MaxLineLength {
		report.Malformed++
		return fmt.Errorf("%w: line is %d bytes, limit is %d", errMalformedLine, len(line), MaxLineLength)
	}
	word, pos, definition, err := ParseLine(line)
	if err != nil {
		report.Malformed++
		return err
	}
	if err := d.Add(word, definition, pos); err != nil {
		if errors.Is(err, ErrDuplicateWord) {
			report.Duplicates++
		} else {
			report.Malformed++
		}
		return err
	}
	report.Loaded++
	return nil
}

// ParseLine splits a source record into its word, part of speech and
// definition. The word ends at the first space, the part of speech at the
// next, and the remainder must start with ": ".
func ParseLine(line string) (word, pos, definition string, err error) {
	word, rest, ok := strings.Cut(line, " ")
	if !ok || word == "" {
		return "", "", "", fmt.Errorf("%w: no part of speech in %q", errMalformedLine, line)
	}
	pos, rest, ok = strings.Cut(rest, " ")
	if !ok || pos == "" {
		return "", "", "", fmt.Errorf("%w: no definition in %q", errMalformedLine, line)
	}
	definition, ok = strings.CutPrefix(rest, definitionSeparator)
	if !ok {
		return "", "", "", fmt.Errorf("%w: missing %q separator in %q", errMalformedLine, definitionSeparator, line)
	}
	return word, pos, definition, nil
}
