package models

import "time"

type ActivityEntry struct {
	Time        string    `json:"time"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
}
