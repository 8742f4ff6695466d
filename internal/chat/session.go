package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Message is one entry of a conversation; Role is "user" or "assistant" and
// assistant content is display-ready markup.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// sessionTTL bounds how long an idle conversation survives in Redis.
const sessionTTL = 24 * time.Hour

// SessionStore keeps per-user chat history in Redis. History is ordered,
// appended on every exchange, and reset on logout.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func historyKey(username string) string {
	return "chat:history:" + username
}

func (s *SessionStore) Append(ctx context.Context, username string, msgs ...Message) error {
	key := historyKey(username)
	values := make([]interface{}, 0, len(msgs))
	for _, m := range msgs {
		b, err := json.Marshal(m)
		if err != nil {
			return err
		}
		values = append(values, b)
	}
	if err := s.rdb.RPush(ctx, key, values...).Err(); err != nil {
		return fmt.Errorf("failed to append chat history: %w", err)
	}
	return s.rdb.Expire(ctx, key, sessionTTL).Err()
}

func (s *SessionStore) History(ctx context.Context, username string) ([]Message, error) {
	raw, err := s.rdb.LRange(ctx, historyKey(username), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat history: %w", err)
	}
	msgs := make([]Message, 0, len(raw))
	for _, item := range raw {
		var m Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// Reset drops the user's conversation, as on logout.
func (s *SessionStore) Reset(ctx context.Context, username string) error {
	return s.rdb.Del(ctx, historyKey(username)).Err()
}
