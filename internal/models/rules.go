package models

import "hashlab/pkg/rules"

type RuleSetSummary struct {
	Message   string      `json:"message"`
	Meta      rules.Flags `json:"meta"`
	RuleLines int         `json:"ruleLines"`
}
