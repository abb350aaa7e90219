package models

import "time"

const StatusActive = "ACTIVE"

// ThroughputSnapshot is a point-in-time read of an index's provisioned
// throughput. A fresh one is fetched for every scaling decision.
type ThroughputSnapshot struct {
	Status        string    `json:"status"`
	Created       time.Time `json:"created"`
	LastDecrease  time.Time `json:"last_decrease"`
	LastIncrease  time.Time `json:"last_increase"`
	ReadCapacity  int64     `json:"read_capacity"`
	WriteCapacity int64     `json:"write_capacity"`
}

func (s ThroughputSnapshot) IsActive() bool {
	return s.Status == StatusActive
}
