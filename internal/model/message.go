package model

import "time"

// Message is a single mail item shown in the mailbox. Only ID and Read
// drive layout behaviour; the remaining fields are display payload.
type Message struct {
	// ID uniquely identifies the message within the mailbox.
	ID string `json:"id"`

	// Name is the sender's display name.
	Name string `json:"name"`

	// Email is the sender's address, also used as the reply-to.
	Email string `json:"email"`

	// Subject is the message subject line.
	Subject string `json:"subject"`

	// Text is the plain-text body.
	Text string `json:"text"`

	// Date is when the message was sent.
	Date time.Time `json:"date"`

	// Read reports whether the user has opened the message.
	Read bool `json:"read"`

	// Labels are free-form tags rendered as badges (e.g. "work").
	Labels []string `json:"labels,omitempty"`
}

// FindMessage returns the message whose ID equals id, or nil when the
// sequence holds no such message.
func FindMessage(messages []Message, id string) *Message {
	for i := range messages {
		if messages[i].ID == id {
			return &messages[i]
		}
	}
	return nil
}

// Unread returns the messages that have not been read, in input order.
func Unread(messages []Message) []Message {
	var out []Message
	for _, m := range messages {
		if !m.Read {
			out = append(out, m)
		}
	}
	return out
}
