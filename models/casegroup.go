package models

// CaseGroup is a read-only aggregate grouping several cases under a shared
// theme, shown alongside individual cases in listings. CaseCount is a cached
// count and is not validated against actual membership.
type CaseGroup struct {
	ID         string   `json:"id" bson:"_id"`
	Name       string   `json:"name" bson:"name"`
	CaseCount  int      `json:"caseCount" bson:"caseCount"`
	Plaintiffs []string `json:"plaintiffs" bson:"plaintiffs"`
	Type       CaseType `json:"type" bson:"type"`
}
