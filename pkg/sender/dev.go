package sender

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender writes each send to disk instead of delivering it. Preview the
// .html in a browser; the .json next to it carries the envelope.
type DevSender struct {
	dir string
}

// NewDev creates a sender that saves messages under dir. The directory is
// created on first send if it does not exist.
func NewDev(dir string) *DevSender {
	return &DevSender{dir: dir}
}

type devMetadata struct {
	Timestamp  string `json:"timestamp"`
	To         string `json:"to"`
	Subject    string `json:"subject"`
	CampaignID string `json:"campaign_id,omitempty"`
}

// Send writes msg.HTML and its metadata as a timestamped file pair.
func (d *DevSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrSendFailed, err)
	}

	now := time.Now()
	timestamp := now.Format("2006_01_02_150405")

	identifier := msg.CampaignID
	if identifier == "" {
		identifier = msg.Subject
	}
	baseFilename := fmt.Sprintf("%s_%s", timestamp, sanitizeFilename(identifier))

	htmlPath := filepath.Join(d.dir, baseFilename+".html")
	if err := os.WriteFile(htmlPath, []byte(msg.HTML), 0644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrSendFailed, err)
	}

	metadata := devMetadata{
		Timestamp:  now.Format(time.RFC3339),
		To:         msg.To,
		Subject:    msg.Subject,
		CampaignID: msg.CampaignID,
	}
	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrSendFailed, err)
	}
	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrSendFailed, err)
	}

	return nil
}

var filenameRe = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename reduces an identifier to a safe lowercase filename stem.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = filenameRe.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "campaign"
	}
	return strings.ToLower(s)
}
