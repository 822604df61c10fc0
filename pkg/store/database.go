//go:build database

package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"codeberg.org/dkvist/ludo"
)

const databaseSchema = `
CREATE TABLE match (
	id      serial PRIMARY KEY,
	gameid  text NOT NULL,
	started bigint NOT NULL,
	ended   bigint NOT NULL,
	players text NOT NULL,
	winner  text NOT NULL,
	replay  text NOT NULL DEFAULT ''
);
CREATE TABLE savedgame (
	gameid text PRIMARY KEY,
	saved  bigint NOT NULL,
	state  text NOT NULL
);
`

var (
	db     *pgx.Conn
	dbLock = &sync.Mutex{}
)

// Connect opens the database connection and initializes the schema when
// it does not exist yet.
func Connect(dataSource string) error {
	dbLock.Lock()
	defer dbLock.Unlock()

	var err error
	db, err = pgx.Connect(context.Background(), dataSource)
	if err != nil {
		return err
	}
	if _, err = db.Exec(context.Background(), "SELECT 1=1"); err != nil {
		return err
	}
	return initDB()
}

// Close terminates the database connection.
func Close() error {
	dbLock.Lock()
	defer dbLock.Unlock()

	if db == nil {
		return nil
	}
	err := db.Close(context.Background())
	db = nil
	return err
}

func begin() (pgx.Tx, error) {
	tx, err := db.Begin(context.Background())
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(context.Background(), "SET SCHEMA 'ludo'")
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func initDB() error {
	tx, err := begin()
	if err != nil {
		return err
	}
	defer tx.Commit(context.Background())

	var result int
	err = tx.QueryRow(context.Background(), "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'ludo' AND table_name = 'match'").Scan(&result)
	if err != nil {
		return err
	} else if result > 0 {
		return nil // Database has been initialized.
	}

	_, err = tx.Exec(context.Background(), databaseSchema)
	return err
}

// RecordMatch archives a finished or cancelled match together with its
// move replay.
func RecordMatch(g *ludo.Game, replay []*ludo.Move) error {
	dbLock.Lock()
	defer dbLock.Unlock()

	if db == nil {
		return nil
	}

	tx, err := begin()
	if err != nil {
		return err
	}
	defer tx.Commit(context.Background())

	names := make([]string, len(g.Players))
	for i, p := range g.Players {
		names[i] = p.Name
	}
	var winner string
	if g.Winner >= 0 {
		winner = g.Players[g.Winner].Name
	}

	moves, err := json.Marshal(replay)
	if err != nil {
		return err
	}

	_, err = tx.Exec(context.Background(), "INSERT INTO match (gameid, started, ended, players, winner, replay) VALUES ($1, $2, $3, $4, $5, $6)",
		g.ID, g.Started, g.Ended, strings.Join(names, ","), winner, string(moves))
	return err
}

// SaveGame persists the serialized form of an in-progress match,
// replacing any previous save for the same match.
func SaveGame(g *ludo.Game) error {
	dbLock.Lock()
	defer dbLock.Unlock()

	if db == nil {
		return nil
	}

	state, err := g.Serialize()
	if err != nil {
		return err
	}

	tx, err := begin()
	if err != nil {
		return err
	}
	defer tx.Commit(context.Background())

	_, err = tx.Exec(context.Background(), "INSERT INTO savedgame (gameid, saved, state) VALUES ($1, $2, $3) ON CONFLICT (gameid) DO UPDATE SET saved = $2, state = $3",
		g.ID, time.Now().Unix(), string(state))
	return err
}

// LoadGame restores a saved match. It returns nil when no save exists.
func LoadGame(gameID string) (*ludo.Game, error) {
	dbLock.Lock()
	defer dbLock.Unlock()

	if db == nil {
		return nil, nil
	}

	tx, err := begin()
	if err != nil {
		return nil, err
	}
	defer tx.Commit(context.Background())

	var state string
	err = tx.QueryRow(context.Background(), "SELECT state FROM savedgame WHERE gameid = $1", gameID).Scan(&state)
	if err == pgx.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return ludo.RestoreGame([]byte(state))
}

// DeleteSavedGame removes the save for a match, typically after it
// finishes.
func DeleteSavedGame(gameID string) error {
	dbLock.Lock()
	defer dbLock.Unlock()

	if db == nil {
		return nil
	}

	tx, err := begin()
	if err != nil {
		return err
	}
	defer tx.Commit(context.Background())

	_, err = tx.Exec(context.Background(), "DELETE FROM savedgame WHERE gameid = $1", gameID)
	return err
}

// RecentMatches returns the newest archived matches, most recent first.
func RecentMatches(limit int) ([]*MatchRecord, error) {
	dbLock.Lock()
	defer dbLock.Unlock()

	if db == nil {
		return nil, nil
	}

	tx, err := begin()
	if err != nil {
		return nil, err
	}
	defer tx.Commit(context.Background())

	rows, err := tx.Query(context.Background(), "SELECT id, gameid, started, ended, players, winner FROM match ORDER BY ended DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*MatchRecord
	for rows.Next() {
		var (
			r       MatchRecord
			players string
		)
		if err := rows.Scan(&r.ID, &r.GameID, &r.Started, &r.Ended, &players, &r.Winner); err != nil {
			return nil, err
		}
		r.Players = strings.Split(players, ",")
		matches = append(matches, &r)
	}
	return matches, rows.Err()
}
