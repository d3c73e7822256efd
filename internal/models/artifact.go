package models

// Artifact names. Each artifact is the whole current value of one state
// category and is always rewritten in full.
const (
	HashesArtifact   = "hashes.txt"
	RuleSetArtifact  = "rules.rule"
	RuleMetaArtifact = "rules.json"
	ElapsedArtifact  = "time.txt"
	ResultArtifact   = "result.txt"
	HistoryArtifact  = "history.json"
)

// Artifacts lists every artifact name the server reads or writes.
var Artifacts = []string{
	HashesArtifact,
	RuleSetArtifact,
	RuleMetaArtifact,
	ElapsedArtifact,
	ResultArtifact,
	HistoryArtifact,
}

// Artifact is the database row backing one artifact when the postgres
// storage driver is selected.
type Artifact struct {
	Name      string `gorm:"primaryKey;type:varchar(64)" json:"name"`
	Content   []byte `gorm:"type:bytea" json:"content"`
	UpdatedAt int64  `gorm:"autoUpdateTime" json:"updated_at"`
}
