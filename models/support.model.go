package models

import (
	"time"

	"gorm.io/gorm"
)

// Support message senders.
const (
	SenderVisitor = "visitor"
	SenderAgent   = "agent"
	SenderBot     = "bot"
)

// SupportSession is one visitor's conversation with the store. Visitors
// are anonymous; the session token is minted when the chat widget opens.
type SupportSession struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SessionID string `gorm:"size:36;uniqueIndex;not null" json:"session_id"`

	// Denormalized preview fields so the agent list view does not query
	// messages per session
	LastMessageContent string    `gorm:"type:text" json:"last_message"`
	LastMessageAt      time.Time `json:"last_message_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	// Relations
	Messages []SupportMessage `gorm:"foreignKey:SupportSessionID" json:"messages"`
}

// SupportMessage is one line of a support conversation.
type SupportMessage struct {
	ID               uint `gorm:"primaryKey" json:"id"`
	SupportSessionID uint `gorm:"index;not null" json:"support_session_id"`

	Sender  string `gorm:"size:20;not null" json:"sender"` // 'visitor', 'agent', 'bot'
	AgentID uint   `gorm:"index" json:"agent_id,omitempty"` // staff user id when Sender is 'agent'
	Content string `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
