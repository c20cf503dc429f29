package outbox

import (
	"errors"
	"time"
)

var ErrUnknownKind = errors.New("no handler registered for event kind")

// Well-known event kinds.
const (
	KindNotification  = "notification.send"
	KindLoyaltyCredit = "loyalty.credit"
)

type EventStatus string

const (
	StatusPending EventStatus = "pending"
	StatusDone    EventStatus = "done"
	StatusFailed  EventStatus = "failed"
)

// Event is a queued side effect recorded alongside the operation that
// triggered it. The dispatcher delivers pending events asynchronously, so a
// failing collaborator never rolls back the triggering operation.
type Event struct {
	ID            string
	Kind          string
	Payload       []byte
	Status        EventStatus
	Attempts      int
	LastError     *string
	NextAttemptAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
