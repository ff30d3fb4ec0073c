package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// documents is the whole-document key/value layer the repositories sit on.
// Every save replaces the full body for its id; there are no partial updates.
type documents struct {
	db dbConn
}

func newDocuments(db dbConn) *documents {
	return &documents{db: db}
}

// Get unmarshals the document with the given id into out. It returns false
// with no error when the document does not exist.
func (d *documents) Get(id string, out interface{}) (bool, error) {
	var body string
	err := d.db.QueryRow(`SELECT body FROM documents WHERE id = ?`, id).Scan(&body)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get document %s: %w", id, err)
	}

	if err := json.Unmarshal([]byte(body), out); err != nil {
		return false, fmt.Errorf("failed to decode document %s: %w", id, err)
	}

	return true, nil
}

// Save upserts the document with the given id, replacing the entire body.
func (d *documents) Save(id string, doc interface{}) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", id, err)
	}

	query := `
		INSERT INTO documents (id, body, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
	`

	if _, err := d.db.Exec(query, id, string(body), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save document %s: %w", id, err)
	}

	return nil
}
