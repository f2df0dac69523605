package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Tutorial difficulty levels.
const (
	DifficultyBeginner     = "BEGINNER"
	DifficultyIntermediate = "INTERMEDIATE"
	DifficultyAdvanced     = "ADVANCED"
)

// Lesson content types. These are rendering hints only; the data model
// treats all lesson types alike.
const (
	LessonTypeText     = "text"
	LessonTypeCode     = "code"
	LessonTypeTerminal = "terminal"
	LessonTypeQuiz     = "quiz"
)

type Tutorial struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Slug         string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description  string    `gorm:"type:text" json:"description"`
	Difficulty   string    `gorm:"default:BEGINNER" json:"difficulty"` // BEGINNER, INTERMEDIATE, ADVANCED
	DisplayOrder int       `json:"order"`                              // display sorting only, not unique
	Lessons      []Lesson  `gorm:"constraint:OnDelete:CASCADE" json:"lessons,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Lesson struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TutorialID    uint      `gorm:"index" json:"tutorialId"`
	Title         string    `gorm:"not null" json:"title"`
	Content       string    `gorm:"type:text" json:"content"`
	Type          string    `gorm:"default:text" json:"type"` // text, code, terminal, quiz
	SequenceOrder int       `json:"order"`                    // 1-based position within the tutorial
	Duration      int       `gorm:"default:10" json:"duration"`
	Completed     bool      `gorm:"default:false" json:"completed"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BeforeSave normalises the difficulty to a known level.
func (t *Tutorial) BeforeSave(tx *gorm.DB) error {
	t.Difficulty = NormalizeDifficulty(t.Difficulty)
	return nil
}

func NormalizeDifficulty(value string) string {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case DifficultyIntermediate:
		return DifficultyIntermediate
	case DifficultyAdvanced:
		return DifficultyAdvanced
	default:
		return DifficultyBeginner
	}
}

func NormalizeLessonType(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case LessonTypeCode:
		return LessonTypeCode
	case LessonTypeTerminal:
		return LessonTypeTerminal
	case LessonTypeQuiz:
		return LessonTypeQuiz
	default:
		return LessonTypeText
	}
}
