package model

// QuestionType is the closed set of answer types. Only the boolean type has
// special answer semantics at check-in; every other type counts as free-form.
type QuestionType string

const (
	QuestionTypeBoolean        QuestionType = "B"
	QuestionTypeNumber         QuestionType = "N"
	QuestionTypeString         QuestionType = "S"
	QuestionTypeText           QuestionType = "T"
	QuestionTypeChoice         QuestionType = "C"
	QuestionTypeMultipleChoice QuestionType = "M"
	QuestionTypeFile           QuestionType = "F"
	QuestionTypeDate           QuestionType = "D"
	QuestionTypeTime           QuestionType = "H"
	QuestionTypeDateTime       QuestionType = "W"
	QuestionTypePhone          QuestionType = "TEL"
)

type Question struct {
	ID               int64        `json:"id" validate:"required"`
	Type             QuestionType `json:"type"`
	Question         string       `json:"question"`
	Required         bool         `json:"required"`
	AskDuringCheckIn bool         `json:"ask_during_checkin"`
	Position         int          `json:"position"`
}

type Item struct {
	ID               int64      `json:"id" validate:"required"`
	Name             string     `json:"name"`
	InternalName     string     `json:"internal_name"`
	DefaultPrice     string     `json:"default_price"`
	CategoryID       *int64     `json:"category"`
	Active           bool       `json:"active"`
	Description      string     `json:"description"`
	Position         int        `json:"position"`
	CheckInAttention bool       `json:"checkin_attention"`
	Questions        []Question `json:"questions" validate:"dive"`
}
