package etl

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Processor loads the raw Saber Pro CSV export into the saber_pro table.
// Each chunk of rows is one transaction; a failing chunk rolls back and
// aborts the load.
type Processor struct {
	FilePath  string
	DBPath    string
	ChunkSize int
	Limit     int // 0 loads everything
}

func NewProcessor(filePath, dbPath string) *Processor {
	return &Processor{
		FilePath:  filePath,
		DBPath:    dbPath,
		ChunkSize: 50000,
	}
}

// CreateDatabase drops and recreates the saber_pro table. The table is
// rebuilt wholesale on every load, so there is no migration history.
func (p *Processor) CreateDatabase() (*sql.DB, error) {
	if dir := filepath.Dir(p.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create database directory")
		}
	}
	db, err := sql.Open("sqlite", p.DBPath)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	if _, err := db.Exec("DROP TABLE IF EXISTS saber_pro"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "drop existing table")
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create table")
	}
	return db, nil
}

// ProcessData runs the full load: recreate the table, stream the CSV in
// chunks, create indexes, report the row count.
func (p *Processor) ProcessData() (int, error) {
	db, err := p.CreateDatabase()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	f, err := os.Open(p.FilePath)
	if err != nil {
		return 0, errors.Wrap(err, "open csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, errors.Wrap(err, "read csv header")
	}
	colIndex, matched := matchHeader(header)
	if matched == 0 {
		return 0, errors.Errorf("no saber_pro columns found in header: %v", header)
	}
	log.WithFields(log.Fields{
		"file":    p.FilePath,
		"columns": matched,
		"chunk":   p.ChunkSize,
	}).Info("Starting data processing")

	insertSQL := buildInsertSQL()
	total := 0
	chunk := make([][]interface{}, 0, p.ChunkSize)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, errors.Wrapf(err, "read csv row %d", total+1)
		}
		chunk = append(chunk, recordArgs(record, colIndex))
		if len(chunk) >= p.ChunkSize {
			if err := p.insertChunk(db, insertSQL, chunk); err != nil {
				return total, err
			}
			total += len(chunk)
			chunk = chunk[:0]
			log.WithField("rows", total).Info("Chunk committed")
		}
		if p.Limit > 0 && total+len(chunk) >= p.Limit {
			break
		}
	}
	if len(chunk) > 0 {
		if err := p.insertChunk(db, insertSQL, chunk); err != nil {
			return total, err
		}
		total += len(chunk)
	}

	log.Info("Creating indexes")
	for _, stmt := range indexSQL {
		if _, err := db.Exec(stmt); err != nil {
			return total, errors.Wrap(err, "create index")
		}
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM saber_pro").Scan(&count); err != nil {
		return total, errors.Wrap(err, "count loaded rows")
	}
	log.WithField("total", count).Info("Data processing completed successfully")
	return count, nil
}

func (p *Processor) insertChunk(db *sql.DB, insertSQL string, chunk [][]interface{}) error {
	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "prepare insert")
	}
	for _, args := range chunk {
		if _, err := stmt.Exec(args...); err != nil {
			stmt.Close()
			tx.Rollback()
			return errors.Wrap(err, "insert row")
		}
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit chunk")
	}
	return nil
}

// matchHeader maps each saber_pro column to its position in the CSV header.
// The export ships uppercase names, so matching is case-insensitive; columns
// absent from the file load as NULL.
func matchHeader(header []string) (map[string]int, int) {
	positions := map[string]int{}
	for i, name := range header {
		positions[strings.ToLower(strings.TrimSpace(name))] = i
	}
	colIndex := map[string]int{}
	matched := 0
	for _, col := range columns {
		if pos, ok := positions[col]; ok {
			colIndex[col] = pos
			matched++
		} else {
			colIndex[col] = -1
		}
	}
	return colIndex, matched
}

func buildInsertSQL() string {
	placeholders := strings.Repeat("?, ", len(columns))
	return fmt.Sprintf("INSERT INTO saber_pro (%s) VALUES (%s)",
		strings.Join(columns, ", "), strings.TrimSuffix(placeholders, ", "))
}

// recordArgs converts one CSV record into insert arguments following the
// column order. Blank fields become NULL; score fields additionally become
// NULL when they fail to parse as numbers.
func recordArgs(record []string, colIndex map[string]int) []interface{} {
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		pos := colIndex[col]
		if pos < 0 || pos >= len(record) {
			args = append(args, nil)
			continue
		}
		value := strings.TrimSpace(record[pos])
		if value == "" {
			args = append(args, nil)
			continue
		}
		if scoreColumns[col] {
			score, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
			if err != nil {
				args = append(args, nil)
				continue
			}
			args = append(args, score)
			continue
		}
		args = append(args, value)
	}
	return args
}
