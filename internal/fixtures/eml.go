package fixtures

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/emersion/go-message/mail"
	"github.com/google/uuid"

	"github.com/nhle/avon/internal/model"
)

// LoadDir parses every .eml file directly inside dir, newest first.
// Files that fail to parse are skipped and logged.
func LoadDir(dir string, logger *slog.Logger) ([]model.Message, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures dir %s: %w", dir, err)
	}

	var msgs []model.Message
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".eml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		msg, err := parseFile(path)
		if err != nil {
			logger.Warn("skipping message", "path", path, "error", err)
			continue
		}
		msgs = append(msgs, msg)
	}

	slices.SortStableFunc(msgs, func(a, b model.Message) int {
		return cmp.Compare(b.Date.UnixNano(), a.Date.UnixNano())
	})
	return msgs, nil
}

func parseFile(path string) (model.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Message{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return ParseEML(f)
}

// ParseEML converts one RFC 5322 message into a Message. The sender comes
// from From, labels from Keywords and the read flag from an mbox-style
// Status header containing "R". A message without a Message-ID gets a
// random one.
func ParseEML(r io.Reader) (model.Message, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return model.Message{}, fmt.Errorf("parsing message: %w", err)
	}
	defer mr.Close()

	h := mr.Header
	msg := model.Message{}

	msg.ID, _ = h.MessageID()
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if from, err := h.AddressList("From"); err == nil && len(from) > 0 {
		msg.Name = from[0].Name
		msg.Email = from[0].Address
		if msg.Name == "" {
			msg.Name = from[0].Address
		}
	}
	msg.Subject, _ = h.Subject()
	msg.Date, _ = h.Date()
	msg.Read = strings.Contains(h.Get("Status"), "R")
	for _, kw := range strings.Split(h.Get("Keywords"), ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			msg.Labels = append(msg.Labels, kw)
		}
	}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Message{}, fmt.Errorf("reading body: %w", err)
		}

		ih, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		contentType, _, _ := ih.ContentType()
		if contentType != "" && !strings.HasPrefix(contentType, "text/plain") {
			continue
		}
		body, err := io.ReadAll(part.Body)
		if err != nil {
			return model.Message{}, fmt.Errorf("reading body: %w", err)
		}
		if msg.Text == "" {
			msg.Text = strings.TrimSpace(string(body))
		}
	}

	return msg, nil
}
