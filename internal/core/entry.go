package core

import (
	"time"
)

// Entry is one dictionary word. Text is kept verbatim, original casing
// and punctuation included; Key is derived from it once at insert time.
type Entry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Key  Key    `json:"key"`

	CreatedAt time.Time `json:"created_at"`
}
