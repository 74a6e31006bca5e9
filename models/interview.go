package models

type InterviewType string

const (
	InterviewTypeVirtual  InterviewType = "Virtual"
	InterviewTypeInPerson InterviewType = "In-Person"
)

func (t InterviewType) IsValid() bool {
	return t == InterviewTypeVirtual || t == InterviewTypeInPerson
}

type AlertType string

const (
	AlertTypeKeyword  AlertType = "keyword"
	AlertTypeCategory AlertType = "category"
)

func (t AlertType) IsValid() bool {
	return t == AlertTypeKeyword || t == AlertTypeCategory
}
