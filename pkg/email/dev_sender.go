package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mcucsya/portal/pkg/slug"
)

// DevSender is the EmailSender used when Postmark is not configured.
// Every message is written to dir as <stamp>_<name>.html with a JSON
// sidecar holding the envelope.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender writes messages under dir, creating it on first send.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type envelope struct {
	Timestamp string `json:"timestamp"`
	SendTo    string `json:"send_to"`
	ReplyTo   string `json:"reply_to,omitempty"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
}

func (d *DevSender) SendEmail(_ context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	now := d.now()
	meta, err := json.MarshalIndent(envelope{
		Timestamp: now.Format(time.RFC3339),
		SendTo:    params.SendTo,
		ReplyTo:   params.ReplyTo,
		Subject:   params.Subject,
		Tag:       params.Tag,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode envelope: %v", ErrFailedToSendEmail, err)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrFailedToSendEmail, d.dir, err)
	}

	base := filepath.Join(d.dir, now.Format("2006_01_02_150405.000000")+"_"+fileStem(params))
	files := map[string][]byte{
		base + ".html": []byte(params.BodyHTML),
		base + ".json": meta,
	}
	for path, data := range files {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("%w: write %s: %v", ErrFailedToSendEmail, filepath.Base(path), err)
		}
	}
	return nil
}

// fileStem names a message after its tag, or its subject when untagged.
// slug output is already limited to [a-z0-9_].
func fileStem(params SendEmailParams) string {
	name := params.Tag
	if name == "" {
		name = params.Subject
	}
	if s := slug.Make(name, slug.Separator("_"), slug.MaxLength(100)); s != "" {
		return s
	}
	return "email"
}
