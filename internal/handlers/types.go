package handlers

import (
	"encoding/json"

	"hashlab/pkg/rules"
)

type HashRequest struct {
	Password string `json:"password"`
}

type HashResponse struct {
	Hash string `json:"hash"`
}

// AttackRequest takes any JSON value as the attack type; only falsy values
// count as missing.
type AttackRequest struct {
	AttackType interface{} `json:"attackType"`
}

// Label returns the attack type as recorded in history. Non-string values
// keep their JSON text, so 5 becomes "5".
func (r AttackRequest) Label() (string, bool) {
	if !rules.Truthy(r.AttackType) {
		return "", false
	}
	if s, ok := r.AttackType.(string); ok {
		return s, true
	}
	b, err := json.Marshal(r.AttackType)
	if err != nil {
		return "", false
	}
	return string(b), true
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

const (
	ErrMsgInvalidPayload = "Invalid request payload"
	HealthMessage        = "Backend running"
)
