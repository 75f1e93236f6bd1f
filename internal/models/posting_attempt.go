package models

import "time"

// PostingAttempt is a row of the posting_attempts table.
type PostingAttempt struct {
	AttemptID   string    `db:"attempt_id"`
	ReferenceNo string    `db:"reference_no"`
	AttemptNo   int16     `db:"attempt_no"` // 1 or 2
	State       string    `db:"state"`
	Outcome     string    `db:"outcome"`
	Message     string    `db:"message"`
	CreatedAt   time.Time `db:"created_at"`
	CreatedBy   string    `db:"created_by"`
}
