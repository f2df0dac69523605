package models

import "time"

// Resume is one document per user. Child sections are replaced wholesale
// on save rather than edited row by row.
type Resume struct {
	ID              uint               `gorm:"primaryKey" json:"id"`
	UserID          uint               `gorm:"uniqueIndex" json:"userId"`
	FirstName       string             `json:"firstName"`
	LastName        string             `json:"lastName"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone,omitempty"`
	Location        string             `json:"location,omitempty"`
	Summary         string             `gorm:"type:text" json:"summary,omitempty"`
	LinkedIn        string             `json:"linkedin,omitempty"`
	GitHub          string             `json:"github,omitempty"`
	Website         string             `json:"website,omitempty"`
	TechnicalSkills []string           `gorm:"serializer:json" json:"technicalSkills"`
	SoftSkills      []string           `gorm:"serializer:json" json:"softSkills"`
	Languages       []string           `gorm:"serializer:json" json:"languages"`
	Tools           []string           `gorm:"serializer:json" json:"tools"`
	Experience      []ResumeExperience `gorm:"constraint:OnDelete:CASCADE" json:"experience"`
	Education       []ResumeEducation  `gorm:"constraint:OnDelete:CASCADE" json:"education"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type ResumeExperience struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	ResumeID     uint     `gorm:"index" json:"-"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `gorm:"type:text" json:"description,omitempty"`
	Achievements []string `gorm:"serializer:json" json:"achievements"`
}

type ResumeEducation struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	ResumeID     uint     `gorm:"index" json:"-"`
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	Field        string   `json:"field,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	GPA          string   `json:"gpa,omitempty"`
	Achievements []string `gorm:"serializer:json" json:"achievements"`
}
