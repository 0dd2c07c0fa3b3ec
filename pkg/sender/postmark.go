package sender

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkSender struct {
	client *postmark.Client
	config Config
}

// NewPostmark creates a Postmark-backed sender. Both tokens are required
// so misconfiguration surfaces at startup rather than on first send.
func NewPostmark(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !emailRe.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.ReplyToEmail != "" && !emailRe.MatchString(cfg.ReplyToEmail) {
		return nil, fmt.Errorf("%w: ReplyToEmail must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkSender{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}, nil
}

// MustNewPostmark panics on invalid config. Fail fast during initialization
// rather than letting a broken sender reach the send path.
func MustNewPostmark(cfg Config) Sender {
	s, err := NewPostmark(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// Send delivers via Postmark's transactional API. Opens and HTML link clicks
// are tracked; the campaign id becomes the Postmark tag so delivery stats
// group per campaign.
func (s *postmarkSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       s.config.SenderEmail,
		ReplyTo:    s.config.ReplyToEmail,
		To:         msg.To,
		Subject:    msg.Subject,
		Tag:        msg.CampaignID,
		HTMLBody:   msg.HTML,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrSendFailed,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
