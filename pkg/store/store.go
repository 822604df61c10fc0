// Package store archives finished matches and saves in-progress games to
// PostgreSQL. It consumes the engine's serialized match form and never
// reaches into live state. Build with the `database` tag to enable it;
// without the tag every operation is a no-op so embedders need no
// conditional wiring.
package store

// MatchRecord is one archived match.
type MatchRecord struct {
	ID      int
	GameID  string
	Started int64
	Ended   int64
	Players []string
	Winner  string
}

// SavedGame is a suspended match awaiting resume.
type SavedGame struct {
	GameID string
	Saved  int64
	State  []byte
}
