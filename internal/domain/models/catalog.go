package models

// Control is a single ISO 27001:2022 Annex A control.
type Control struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AnnexGroup is a group of related controls under one Annex A clause.
type AnnexGroup struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Controls []Control `json:"controls"`
}

// ScopingQuestion is one question of the fixed scoping questionnaire.
// IDs are stable and globally unique; they are referenced by the
// profile inference rules and must never be renumbered.
type ScopingQuestion struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
}

// QuestionSection groups scoping questions for presentation.
type QuestionSection struct {
	Name      string            `json:"name"`
	Questions []ScopingQuestion `json:"questions"`
}
