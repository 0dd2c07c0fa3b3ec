package sender

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrInvalidConfig  = errors.New("sender.errors.invalid_config")
	ErrInvalidMessage = errors.New("sender.errors.invalid_message")
	ErrSendFailed     = errors.New("sender.errors.send_failed")
)

// Sender delivers a rendered campaign email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one outbound email. CampaignID tags the send for delivery
// analytics; it never appears in the message body.
type Message struct {
	To         string `json:"to"`
	Subject    string `json:"subject"`
	HTML       string `json:"html"`
	CampaignID string `json:"campaign_id,omitempty"`
}

// Config holds delivery configuration. The Postmark tokens are optional so
// development environments can run on the dev sender alone.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`
	ReplyToEmail         string `env:"REPLY_TO_EMAIL"`
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks the message is sendable.
func (m Message) Validate() error {
	if m.To == "" || !emailRe.MatchString(m.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidMessage)
	}
	if m.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidMessage)
	}
	if m.HTML == "" {
		return fmt.Errorf("%w: HTML body is required", ErrInvalidMessage)
	}
	return nil
}
