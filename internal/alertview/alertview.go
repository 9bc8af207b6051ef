// Package alertview tracks which analysis alerts a member has seen.
// Alerts themselves are recomputed on every report; only the viewed marks
// are stored, so acknowledging an alert never changes analysis output.
package alertview

import (
	"time"

	"github.com/google/uuid"
)

// View is a member's acknowledgement of a single alert id.
type View struct {
	MemberID uuid.UUID
	AlertID  string
	ViewedAt time.Time
}
