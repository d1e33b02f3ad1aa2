package chat

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	TypeChatMessage   = "chat message"
	TypeMatchUpdated  = "match.updated"
	TypeScoreRecorded = "score.recorded"
)

// Envelope is the single frame shape sent to every connected client.
type Envelope struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	MatchID   uint            `json:"match_id,omitempty"`
	Body      string          `json:"body,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp time.Time       `json:"ts"`
}

// inbound is what clients may send. Only chat messages are accepted.
type inbound struct {
	Type    string `json:"type"`
	MatchID uint   `json:"match_id"`
	Body    string `json:"body"`
}

// NewEnvelope stamps an event with a fresh id and marshals payload into it.
func NewEnvelope(typ string, matchID uint, payload any) (Envelope, error) {
	env := Envelope{
		ID:        uuid.NewString(),
		Type:      typ,
		MatchID:   matchID,
		Timestamp: time.Now().UTC(),
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Envelope{}, fmt.Errorf("marshal %s payload: %w", typ, err)
		}
		env.Payload = raw
	}
	return env, nil
}

func chatEnvelope(in inbound) Envelope {
	return Envelope{
		ID:        uuid.NewString(),
		Type:      TypeChatMessage,
		MatchID:   in.MatchID,
		Body:      in.Body,
		Timestamp: time.Now().UTC(),
	}
}
