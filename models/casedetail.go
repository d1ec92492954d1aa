package models

// EventType classifies a procedural occurrence on a case timeline.
type EventType string

// Timeline event types.
const (
	EventTrial        EventType = "TRIAL"
	EventDocument     EventType = "DOCUMENT"
	EventPostponement EventType = "POSTPONEMENT"
	EventRequest      EventType = "REQUEST"
	EventOnsite       EventType = "ONSITE"
)

// TimelineEvent is one procedural occurrence attached to a case detail.
// Events are insertion-ordered; new events are prepended by convention
// (most recent first), never sorted by date.
type TimelineEvent struct {
	ID           string    `json:"id" bson:"id"`
	Date         string    `json:"date" bson:"date"`
	Time         string    `json:"time,omitempty" bson:"time,omitempty"`
	Type         EventType `json:"type" bson:"type"`
	Title        string    `json:"title" bson:"title"`
	Summary      string    `json:"summary,omitempty" bson:"summary,omitempty"`
	Reason       string    `json:"reason,omitempty" bson:"reason,omitempty"`
	DocumentLink string    `json:"documentLink,omitempty" bson:"documentLink,omitempty"`
	DocNumber    string    `json:"docNumber,omitempty" bson:"docNumber,omitempty"`
	StatusTag    string    `json:"statusTag,omitempty" bson:"statusTag,omitempty"` // e.g. 'Quá hạn', 'Đã hoàn tất'
}

// Representative is a person acting for a party, e.g. by power of attorney.
type Representative struct {
	Name string `json:"name" bson:"name"`
	Type string `json:"type" bson:"type"` // 'Ủy quyền' | 'Bảo vệ quyền lợi' | free text
}

// Party is one side (or related person) of a case.
type Party struct {
	Name            string           `json:"name" bson:"name"`
	Role            string           `json:"role" bson:"role"`
	Representatives []Representative `json:"representatives" bson:"representatives"`
	HasHistory      bool             `json:"hasHistory,omitempty" bson:"hasHistory,omitempty"`
}

// ChallengedAction is one step in the ordered chain of administrative
// decisions being contested within an administrative-law case. Ordered by
// Step ascending; no gap checking is enforced.
type ChallengedAction struct {
	Step      int    `json:"step" bson:"step"`
	DocType   string `json:"docType" bson:"docType"`
	DocNumber string `json:"docNumber" bson:"docNumber"`
	Issuer    string `json:"issuer" bson:"issuer"`
	Date      string `json:"date" bson:"date"`
}

// DocumentRef is a reference to a filed document in the case library.
type DocumentRef struct {
	Title string `json:"title" bson:"title"`
	Date  string `json:"date" bson:"date"`
	Type  string `json:"type" bson:"type"`
}

// CaseDetail is the full authoritative record for one case. The embedded
// Case carries the six summary fields; whenever a detail is written, the
// corresponding Case projection must be written in the same logical
// operation (see repository.CaseRepository).
type CaseDetail struct {
	Case                 `bson:",inline"`
	Judge                string             `json:"judge" bson:"judge"`
	CaseStage            string             `json:"caseStage" bson:"caseStage"` // e.g. 'Sơ thẩm', 'Phúc thẩm'
	NextEventDate        string             `json:"nextEventDate" bson:"nextEventDate"`
	NextEventDescription string             `json:"nextEventDescription" bson:"nextEventDescription"`
	Parties              []Party            `json:"parties" bson:"parties"`
	ChallengedActions    []ChallengedAction `json:"challengedActions" bson:"challengedActions"`
	Timeline             []TimelineEvent    `json:"timeline" bson:"timeline"`
	Documents            []DocumentRef      `json:"documents" bson:"documents"`
}

// Summary returns the denormalized listing projection of the detail.
func (d CaseDetail) Summary() Case {
	return d.Case
}

// NewEmptyDetail synthesizes the authoritative record for a freshly created
// case: placeholder judge/stage/next-event fields and empty sub-lists.
func NewEmptyDetail(c Case) CaseDetail {
	return CaseDetail{
		Case:                 c,
		Judge:                "Chưa cập nhật",
		CaseStage:            "Sơ thẩm",
		NextEventDate:        "---",
		NextEventDescription: "Chưa có sự kiện",
		Parties:              []Party{},
		ChallengedActions:    []ChallengedAction{},
		Timeline:             []TimelineEvent{},
		Documents:            []DocumentRef{},
	}
}
