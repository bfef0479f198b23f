package models

import (
	"math"
	"time"
)

// Interview - структурированная оценка заявки. Не больше одного интервью
// на заявку - инвариант держит uniqueIndex по ApplicationID.
type Interview struct {
	BaseModel
	ApplicationID string `gorm:"not null;uniqueIndex" json:"applicationId"`

	InterviewerID   string     `json:"interviewerId"`
	InterviewerName string     `json:"interviewerName,omitempty"`
	InterviewDate   *time.Time `json:"interviewDate,omitempty"`

	// Scoring (шкала 1-10)
	TechnicalScore     int `gorm:"not null" json:"technicalScore"`
	CommunicationScore int `gorm:"not null" json:"communicationScore"`
	MotivationScore    int `gorm:"not null" json:"motivationScore"`
	CultureFitScore    int `gorm:"not null" json:"cultureFitScore"`

	// Взвешенная сумма, всегда пересчитывается из под-оценок
	OverallScore float64 `json:"overallScore"`

	// Qualitative assessment
	Strengths string `json:"strengths,omitempty"`
	Concerns  string `json:"concerns,omitempty"`
	Notes     string `json:"notes,omitempty"`

	Recommendation Recommendation `gorm:"type:varchar(20)" json:"recommendation,omitempty"`
}

// Веса под-оценок в итоговом балле
const (
	technicalWeight     = 0.30
	communicationWeight = 0.25
	motivationWeight    = 0.25
	cultureFitWeight    = 0.20
)

// CalculateOverallScore пересчитывает итоговый балл из четырех под-оценок.
// Округление до одного знака после запятой.
func (i *Interview) CalculateOverallScore() {
	raw := float64(i.TechnicalScore)*technicalWeight +
		float64(i.CommunicationScore)*communicationWeight +
		float64(i.MotivationScore)*motivationWeight +
		float64(i.CultureFitScore)*cultureFitWeight
	i.OverallScore = math.Round(raw*10) / 10
}
