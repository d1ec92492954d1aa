package models

// CaseStatus is the lifecycle state of a case. Values are stored in their
// display-string form, both in mongo documents and in local JSON files.
type CaseStatus string

// The five case statuses shown on the dashboard.
const (
	StatusCompleted CaseStatus = "Hoàn thành"
	StatusPending   CaseStatus = "Đang xử lý"
	StatusOverdue   CaseStatus = "Quá hạn"
	StatusPostponed CaseStatus = "Tạm hoãn"
	StatusUpcoming  CaseStatus = "Sắp diễn ra"
)

// CaseType is the branch of law a case belongs to, stored in display-string form.
type CaseType string

// The four case types tracked by the system.
const (
	TypeCivil          CaseType = "Dân sự"
	TypeCriminal       CaseType = "Hình sự"
	TypeAdministrative CaseType = "Hành chính"
	TypeLabor          CaseType = "Lao động"
)

// Case is the denormalized listing-view projection of a case: the subset of
// CaseDetail shown in list and search views. It is derived data; CaseDetail
// is the authoritative record.
type Case struct {
	ID         string     `json:"id" bson:"_id"`
	Title      string     `json:"title" bson:"title"`
	CaseNumber string     `json:"caseNumber" bson:"caseNumber"` // Số thụ lý, the human filing reference
	Court      string     `json:"court" bson:"court"`
	Status     CaseStatus `json:"status" bson:"status"`
	Type       CaseType   `json:"type" bson:"type"`
	Date       string     `json:"date" bson:"date"` // last-activity date, free-text, not a validated calendar value
}
