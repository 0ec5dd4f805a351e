package state

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonwraymond/checkops/internal/numscan"
)

const (
	// FormatVersion is the version of the state file layout.
	FormatVersion = 1

	// MaxPayload is the longest payload, in bytes, a state file holds.
	MaxPayload = 1023

	// header is the comment line written at the top of every state file.
	header = "# NP State file"

	// maxFileSize bounds how much of a state file is read.
	maxFileSize = 64 << 10
)

// Record is the content of a state file.
type Record struct {
	FormatVersion int
	DataVersion   int

	// Timestamp has whole-second precision.
	Timestamp time.Time

	Payload string
}

// Age returns how long before now the record was written.
func (r *Record) Age(now time.Time) time.Duration {
	return now.Sub(r.Timestamp)
}

// validatePayload rejects payloads that would not read back unchanged.
func validatePayload(payload string) error {
	switch {
	case len(payload) > MaxPayload:
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrPayloadInvalid, len(payload), MaxPayload)
	case strings.Contains(payload, "\n"):
		return fmt.Errorf("%w: contains a newline", ErrPayloadInvalid)
	case strings.HasPrefix(payload, "#"):
		return fmt.Errorf("%w: starts with '#'", ErrPayloadInvalid)
	}
	return nil
}

// writeRecord renders a state file.
func writeRecord(w io.Writer, dataVersion int, ts time.Time, payload string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, header)
	fmt.Fprintln(bw, FormatVersion)
	fmt.Fprintln(bw, dataVersion)
	fmt.Fprintln(bw, ts.Unix())
	fmt.Fprintln(bw, payload)
	return bw.Flush()
}

// readRecord parses a state file. Fields are read leniently: numbers use
// their leading numeric prefix and overlong lines are truncated to
// MaxPayload bytes.
func readRecord(r io.Reader, dataVersion int, now time.Time) (*Record, error) {
	const (
		wantFormat = iota
		wantData
		wantTime
		wantPayload
	)

	br := bufio.NewReader(io.LimitReader(r, maxFileSize))
	rec := &Record{}
	expected := wantFormat

	for {
		line, err := readLine(br)
		if errors.Is(err, io.EOF) {
			return nil, errNoPayload
		}
		if err != nil {
			return nil, err
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		switch expected {
		case wantFormat:
			if v, _ := numscan.Int(line); v != FormatVersion {
				return nil, fmt.Errorf("%w: got %d", errFormatVersion, v)
			}
			rec.FormatVersion = FormatVersion
			expected = wantData

		case wantData:
			if v, _ := numscan.Int(line); v != int64(dataVersion) {
				return nil, fmt.Errorf("%w: got %d, want %d", errDataVersion, v, dataVersion)
			}
			rec.DataVersion = dataVersion
			expected = wantTime

		case wantTime:
			ts, _ := numscan.Uint(line)
			if now.Unix() < 0 || ts > uint64(now.Unix()) {
				return nil, fmt.Errorf("%w: %d", errFutureTimestamp, ts)
			}
			rec.Timestamp = time.Unix(int64(ts), 0)
			expected = wantPayload

		case wantPayload:
			rec.Payload = line
			return rec, nil
		}
	}
}

// readLine returns the next line without its newline, truncated to
// MaxPayload bytes. A final line without a newline is still returned.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	if len(line) > MaxPayload {
		line = line[:MaxPayload]
	}
	return line, nil
}
