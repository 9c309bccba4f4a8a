package model

import "time"

// CommentTarget is the kind of record a comment is attached to.
type CommentTarget string

const (
	CommentOnPublication CommentTarget = "Publication"
	CommentOnTechnician  CommentTarget = "Technician"
)

// Comment is attached either to a publication or to a technician profile.
type Comment struct {
	ID         string        `json:"id"`
	Content    string        `json:"content"`
	AuthorID   string        `json:"authorId"`
	TargetID   string        `json:"targetId"`
	TargetType CommentTarget `json:"targetType"`
	CreatedAt  time.Time     `json:"createdAt"`
}

func (c *Comment) RecordID() string      { return c.ID }
func (c *Comment) SetRecordID(id string) { c.ID = id }
