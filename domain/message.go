// Package domain contains core concepts of the monitoring system.
// This file defines inbound messages and the platform entities they reference.
package domain

import "time"

// User identifies a platform account.
type User struct {
	ID        string
	Name      string
	AvatarURL string
	Bot       bool
}

// Channel is a text channel inside a guild.
type Channel struct {
	ID      string
	GuildID string
	Name    string
	Topic   string
}

// Attachment references a file uploaded alongside a message.
type Attachment struct {
	Filename    string
	URL         string
	ContentType string
}

// Message is an immutable description of one inbound platform message.
// GuildID is empty for direct messages.
type Message struct {
	ID          string
	GuildID     string
	ChannelID   string
	Author      User
	Content     string
	Attachments []Attachment
	Permalink   string
	CreatedAt   time.Time
}
