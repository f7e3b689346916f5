package dataset

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"sentiview/internal/annotation"
)

// LoadJSON reads a dataset file containing a JSON array of annotation
// records.
func LoadJSON(path string) ([]annotation.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	var records []annotation.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return records, nil
}

// LoadSQLite reads annotation rows from an extraction-pipeline SQLite
// database. The database is opened read-only; corrections are never
// written back.
func LoadSQLite(path string) ([]annotation.Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.Query(`SELECT id, title, date, journal, company, region,
		sentiment, sentiment_score, attitude_type, attitude_subtype,
		attitude_polarity, matched_text, match_type, num_matches,
		sentence, sentence_raw
		FROM annotations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query annotations: %w", err)
	}
	defer rows.Close()

	var records []annotation.Record
	for rows.Next() {
		var r annotation.Record
		var region, attitudeType, attitudeSubtype, attitudePolarity sql.NullString
		var matchedText, matchType sql.NullString
		var score sql.NullFloat64
		var numMatches sql.NullInt64
		err := rows.Scan(&r.ID, &r.Title, &r.Date, &r.Journal, &r.Company,
			&region, &r.Sentiment, &score, &attitudeType, &attitudeSubtype,
			&attitudePolarity, &matchedText, &matchType, &numMatches,
			&r.Sentence, &r.SentenceRaw)
		if err != nil {
			return nil, fmt.Errorf("failed to scan annotation row: %w", err)
		}
		r.Region = region.String
		r.SentimentScore = score.Float64
		r.AttitudeType = attitudeType.String
		r.AttitudeSubtype = attitudeSubtype.String
		r.AttitudePolarity = attitudePolarity.String
		r.MatchedText = matchedText.String
		r.MatchType = matchType.String
		r.NumMatches = int(numMatches.Int64)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read annotation rows: %w", err)
	}
	return records, nil
}
