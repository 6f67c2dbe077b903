package ports

import "context"

// SessionRecord is the persisted half of a session: the raw credential
// token and the JSON-serialized identity, exactly as stored under the
// "token" and "user" keys.
type SessionRecord struct {
	Token string
	User  []byte
}

// Empty reports whether the record holds no persisted session.
func (r SessionRecord) Empty() bool {
	return r.Token == "" && len(r.User) == 0
}

// SessionRepository defines the interface for durable session persistence.
// Both keys are written together and cleared together; a reader must never
// observe one set without the other.
type SessionRepository interface {
	Load(ctx context.Context) (SessionRecord, error)
	Save(ctx context.Context, rec SessionRecord) error
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
}
