package gomamayo

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const resultsSchema = `create table if not exists results (
	id integer primary key autoincrement,
	input text not null unique,
	readings text not null,
	terms integer not null,
	degree integer not null
)`

// NewDBClient opens (and if needed initializes) the SQLite database at path.
// ":memory:" gives an in-memory database.
func NewDBClient(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// sqliteは書き込みが単一コネクション前提
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(resultsSchema); err != nil {
		return nil, fmt.Errorf("create results table: %w", err)
	}
	return db, nil
}

type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

const readingSeparator = "/"

type resultRecord struct {
	ID       ResultID `db:"id"`
	Input    string   `db:"input"`
	Readings string   `db:"readings"`
	Terms    int      `db:"terms"`
	Degree   int      `db:"degree"`
}

func (r resultRecord) toResult() Result {
	var readings []string
	if r.Readings != "" {
		readings = strings.Split(r.Readings, readingSeparator)
	}
	return Result{
		Input:          r.Input,
		Readings:       readings,
		Classification: NewClassification(r.Terms, r.Degree),
	}
}

func (s *StorageRdbImpl) AddResult(result Result) (ResultID, error) {
	_, err := s.DB.NamedExec(`insert into results (input, readings, terms, degree)
		values (:input, :readings, :terms, :degree)
		on conflict(input) do update set
			readings = excluded.readings,
			terms = excluded.terms,
			degree = excluded.degree`,
		map[string]interface{}{
			"input":    result.Input,
			"readings": strings.Join(result.Readings, readingSeparator),
			"terms":    result.Classification.Terms,
			"degree":   result.Classification.Degree,
		})
	if err != nil {
		return 0, err
	}

	// 上書きのときLastInsertIdは更新した行を指さないので、入力語で引き直す
	var id ResultID
	if err := s.DB.Get(&id, `select id from results where input = ?`, result.Input); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *StorageRdbImpl) GetResultByInput(input string) (*Result, error) {
	var record resultRecord
	if err := s.DB.Get(&record, `select * from results where input = ?`, input); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	result := record.toResult()
	return &result, nil
}

func (s *StorageRdbImpl) GetAllResults() ([]Result, error) {
	var records []resultRecord
	if err := s.DB.Select(&records, `select * from results order by id`); err != nil {
		return nil, err
	}
	results := make([]Result, len(records))
	for i, record := range records {
		results[i] = record.toResult()
	}
	return results, nil
}

func (s *StorageRdbImpl) CountResults() (int, error) {
	var count int
	row := s.DB.QueryRow(`select count(*) from results`)
	if err := row.Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}
