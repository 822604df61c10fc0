package ludo

// Events are delivered synchronously to the handler registered on a Game.
// The engine never depends on what a handler does with them; presentation,
// persistence and broadcast layers subscribe without the engine knowing
// they exist.

type EventType int8

const (
	EventTypeStatus EventType = iota
	EventTypeRolled
	EventTypeMoved
	EventTypeCaptured
	EventTypeTurn
	EventTypeFinished
)

// EventHandler observes engine events. Handlers run on the caller's
// goroutine and must not call back into the game.
type EventHandler func(event any)

// Event is embedded by every concrete event. Player is the index of the
// player the event concerns.
type Event struct {
	Type   EventType `json:"type"`
	Player int8      `json:"player"`
}

// EventStatus reports a match lifecycle change.
type EventStatus struct {
	Event
	Status Status `json:"status"`
}

// EventRolled reports an accepted die value.
type EventRolled struct {
	Event
	Roll             int8 `json:"roll"`
	ConsecutiveSixes int8 `json:"consecutiveSixes"`
}

// EventMoved reports an applied move.
type EventMoved struct {
	Event
	Move *Move `json:"move"`
}

// EventCaptured reports opposing tokens sent back to their yard.
type EventCaptured struct {
	Event
	Space    int8     `json:"space"`
	TokenIDs []string `json:"tokenIds"`
}

// EventTurn reports that the turn passed to another player.
type EventTurn struct {
	Event
}

// EventFinished reports the end of the match and its winner.
type EventFinished struct {
	Event
	Winner int8 `json:"winner"`
}
