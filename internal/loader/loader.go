// Package loader reads ball-by-ball logs into Delivery records.
package loader

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pable/go-cricket-metrics/internal/model"
)

// DateLayout is the DD/MM/YYYY layout of the date column. Single-digit day
// and month values are accepted.
const DateLayout = "2/1/2006"

// Options configures decoding.
type Options struct {
	Delimiter rune // default ','
}

// BallLog is a decoded ball log plus the content hash of its source bytes.
type BallLog struct {
	Hash       string
	Source     string
	Deliveries []model.Delivery
}

// record mirrors the required columns. Extra columns in the file are ignored.
type record struct {
	MatchID    int    `csv:"match_id"`
	Innings    int    `csv:"innings"`
	Over       int    `csv:"over"`
	BallNo     int    `csv:"ball_no"`
	Date       string `csv:"date"`
	ValidBall  int    `csv:"valid_ball"`
	RunsBatter int    `csv:"runs_batter"`
	RunsTotal  int    `csv:"runs_total"`
	ExtraType  string `csv:"extra_type"`
}

// LoadFile reads and decodes the ball log at path.
func LoadFile(path string, opts Options) (*BallLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "loader: open %s", path)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, eris.Wrapf(err, "loader: read %s", path)
	}

	deliveries, err := Decode(bytes.NewReader(data), opts)
	if err != nil {
		return nil, eris.Wrapf(err, "loader: %s", path)
	}

	zap.L().Debug("ball log loaded",
		zap.String("path", path),
		zap.Int("rows", len(deliveries)),
	)
	return &BallLog{
		Hash:       HashBytes(data),
		Source:     path,
		Deliveries: deliveries,
	}, nil
}

// HashBytes returns the hex sha256 of data, the identity of a ball log.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum[:])
}

// Decode reads delimited rows with a header from r. A missing required
// column or a non-numeric value in a numeric column fails the whole load; an
// unparseable date only blanks that row's date and year.
func Decode(r io.Reader, opts Options) ([]model.Delivery, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.TrimLeadingSpace = true

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		if err == io.EOF {
			return nil, eris.New("loader: empty input, no header row")
		}
		return nil, eris.Wrap(err, "loader: read header")
	}
	dec.DisallowMissingColumns = true

	var (
		out      []model.Delivery
		badDates int
	)
	for line := 2; ; line++ {
		var rec record
		if err := dec.Decode(&rec); err != nil {
			if err == io.EOF {
				break
			}
			return nil, eris.Wrapf(err, "loader: decode line %d", line)
		}
		d := model.Delivery{
			MatchID:    rec.MatchID,
			Innings:    rec.Innings,
			Over:       rec.Over,
			BallNo:     rec.BallNo,
			ValidBall:  rec.ValidBall,
			RunsBatter: rec.RunsBatter,
			RunsTotal:  rec.RunsTotal,
			ExtraType:  NormalizeExtra(rec.ExtraType),
		}
		if t, ok := ParseDate(rec.Date); ok {
			d.Date = t
			d.Year = t.Year()
		} else {
			badDates++
		}
		out = append(out, d)
	}

	if badDates > 0 {
		zap.L().Warn("rows with unparseable dates kept without a year",
			zap.Int("rows", badDates))
	}
	return out, nil
}

// naTokens are the cell values pandas and R write for a missing value.
var naTokens = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {},
	"nan": {}, "null": {},
}

// NormalizeExtra trims an extra_type cell and maps missing-value tokens to
// "", the clean-delivery marker.
func NormalizeExtra(s string) string {
	s = strings.TrimSpace(s)
	if _, ok := naTokens[s]; ok {
		return ""
	}
	return s
}

// ParseDate parses a DD/MM/YYYY string. ok is false for anything else.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
