package models

import "time"

type ForumPost struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"index" json:"userId"`
	UserName  string       `json:"userName"`
	Title     string       `gorm:"not null" json:"title"`
	Content   string       `gorm:"type:text" json:"content"`
	Category  string       `json:"category"` // Deployment, Best Practices, Scaling, Troubleshooting
	Replies   []ForumReply `gorm:"constraint:OnDelete:CASCADE" json:"replies"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type ForumReply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index" json:"postId"`
	UserID    uint      `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
