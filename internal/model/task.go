package model

import "time"

type Task struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	Status         *string    `json:"status,omitempty"`
	Priority       *string    `json:"priority,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	Points         *int       `json:"points,omitempty"`
	ProjectID      int        `json:"projectId"`
	AuthorUserID   int        `json:"authorUserId"`
	AssignedUserID *int       `json:"assignedUserId,omitempty"`

	Author      *User         `json:"author,omitempty"`
	Assignee    *User         `json:"assignee,omitempty"`
	Comments    []*Comment    `json:"comments"`
	Attachments []*Attachment `json:"attachments"`
}

type Comment struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	TaskID int    `json:"taskId"`
	UserID int    `json:"userId"`
}

type Attachment struct {
	ID           int     `json:"id"`
	FileURL      string  `json:"fileURL"`
	FileName     *string `json:"fileName,omitempty"`
	TaskID       int     `json:"taskId"`
	UploadedByID int     `json:"uploadedById"`
}
