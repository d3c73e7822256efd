package models

import "encoding/json"

type HistoryEntry struct {
	AttackType string  `json:"attackType"`
	Time       float64 `json:"time"`
	Timestamp  string  `json:"timestamp"`
}

type AttackRun struct {
	Message    string `json:"message"`
	AttackType string `json:"attackType"`
	Time       string `json:"time"`
}

// CrackResult is one row of /results. Time and Rules are shared by every
// row of a response.
type CrackResult struct {
	Hash     string          `json:"hash"`
	Password string          `json:"password"`
	Time     string          `json:"time"`
	Rules    json.RawMessage `json:"rules"`
}

type AttackProfile struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	HashMode    int    `yaml:"hash_mode" json:"hash_mode"`
}
