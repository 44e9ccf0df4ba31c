package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rotisserie/eris"

	"github.com/pable/go-cricket-metrics/internal/loader"
	"github.com/pable/go-cricket-metrics/internal/model"
)

const dateFormat = "02/01/2006"

// DatasetExists returns true if a ball log with the given hash is already stored.
func (db *DB) DatasetExists(hash string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM datasets WHERE hash = ?", hash).Scan(&count)
	if err != nil {
		return false, eris.Wrap(err, "storage: dataset exists")
	}
	return count > 0, nil
}

// ImportDeliveries stores a ball log in one transaction. Importing the same
// hash again replaces the earlier copy.
func (db *DB) ImportDeliveries(log *loader.BallLog) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return eris.Wrap(err, "storage: begin import")
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM deliveries WHERE dataset_hash = ?", log.Hash); err != nil {
		return eris.Wrap(err, "storage: clear deliveries")
	}
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO datasets(hash, source, row_count, imported_at)
		VALUES (?, ?, ?, ?)`,
		log.Hash, log.Source, len(log.Deliveries), time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return eris.Wrap(err, "storage: insert dataset")
	}

	stmt, err := tx.Prepare(`
		INSERT INTO deliveries(
			dataset_hash, seq, match_id, innings, over_no, ball_no, date,
			valid_ball, runs_batter, runs_total, extra_type
		) VALUES (?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return eris.Wrap(err, "storage: prepare delivery insert")
	}
	defer stmt.Close()

	for i, d := range log.Deliveries {
		date := ""
		if !d.Date.IsZero() {
			date = d.Date.Format(dateFormat)
		}
		_, err = stmt.Exec(
			log.Hash, i, d.MatchID, d.Innings, d.Over, d.BallNo, date,
			d.ValidBall, d.RunsBatter, d.RunsTotal, d.ExtraType,
		)
		if err != nil {
			return eris.Wrapf(err, "storage: insert delivery %d", i)
		}
	}
	return eris.Wrap(tx.Commit(), "storage: commit import")
}

// ListDatasets returns stored ball logs, newest import first.
func (db *DB) ListDatasets() ([]model.Dataset, error) {
	rows, err := db.conn.Query(`
		SELECT hash, source, row_count, imported_at
		FROM datasets ORDER BY imported_at DESC, hash`)
	if err != nil {
		return nil, eris.Wrap(err, "storage: list datasets")
	}
	defer rows.Close()

	var out []model.Dataset
	for rows.Next() {
		var d model.Dataset
		if err := rows.Scan(&d.Hash, &d.Source, &d.Rows, &d.ImportedAt); err != nil {
			return nil, eris.Wrap(err, "storage: scan dataset")
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetDatasetByPrefix finds the most recent dataset whose hash starts with
// prefix. An empty prefix selects the most recent import. Returns nil if
// none matches.
func (db *DB) GetDatasetByPrefix(prefix string) (*model.Dataset, error) {
	var d model.Dataset
	err := db.conn.QueryRow(`
		SELECT hash, source, row_count, imported_at
		FROM datasets WHERE hash LIKE ?
		ORDER BY imported_at DESC, hash LIMIT 1`, prefix+"%").
		Scan(&d.Hash, &d.Source, &d.Rows, &d.ImportedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "storage: get dataset")
	}
	return &d, nil
}

// LoadDeliveries returns the stored rows of a dataset in import order.
func (db *DB) LoadDeliveries(hash string) ([]model.Delivery, error) {
	rows, err := db.conn.Query(`
		SELECT match_id, innings, over_no, ball_no, date,
		       valid_ball, runs_batter, runs_total, extra_type
		FROM deliveries WHERE dataset_hash = ?
		ORDER BY seq`, hash)
	if err != nil {
		return nil, eris.Wrap(err, "storage: load deliveries")
	}
	defer rows.Close()

	var out []model.Delivery
	for rows.Next() {
		var d model.Delivery
		var date string
		if err := rows.Scan(
			&d.MatchID, &d.Innings, &d.Over, &d.BallNo, &date,
			&d.ValidBall, &d.RunsBatter, &d.RunsTotal, &d.ExtraType,
		); err != nil {
			return nil, eris.Wrap(err, "storage: scan delivery")
		}
		if t, ok := loader.ParseDate(date); ok {
			d.Date = t
			d.Year = t.Year()
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// DeleteDataset removes a dataset and its deliveries. Returns false if the
// hash was not stored.
func (db *DB) DeleteDataset(hash string) (bool, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return false, eris.Wrap(err, "storage: begin delete")
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM deliveries WHERE dataset_hash = ?", hash); err != nil {
		return false, eris.Wrap(err, "storage: delete deliveries")
	}
	res, err := tx.Exec("DELETE FROM datasets WHERE hash = ?", hash)
	if err != nil {
		return false, eris.Wrap(err, "storage: delete dataset")
	}
	n, _ := res.RowsAffected()
	if err := tx.Commit(); err != nil {
		return false, eris.Wrap(err, "storage: commit delete")
	}
	return n > 0, nil
}

// QueryRaw runs an arbitrary query and returns column names and stringified rows.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, eris.Wrap(err, "storage: query")
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, eris.Wrap(err, "storage: columns")
	}

	var out [][]string
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, eris.Wrap(err, "storage: scan row")
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			switch t := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(t)
			default:
				row[i] = fmt.Sprintf("%v", t)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}
