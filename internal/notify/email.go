package notify

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"jobmonitor/internal/config"
	"jobmonitor/internal/domain"
)

// DigestSender delivers one accumulated batch of non-urgent postings.
type DigestSender interface {
	SendDigest(batch []domain.ScoredPosting) error
}

type EmailDigestSender struct {
	cfg config.Email
}

func NewEmailDigestSender(cfg config.Email) *EmailDigestSender {
	return &EmailDigestSender{cfg: cfg}
}

func (e *EmailDigestSender) SendDigest(batch []domain.ScoredPosting) error {
	if len(batch) == 0 {
		return nil
	}

	subject := fmt.Sprintf("📊 Daily Job Digest: %d New Roles", len(batch))
	body := FormatDigest(batch, time.Now())

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", e.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", e.cfg.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", e.cfg.SMTPHost, e.cfg.SMTPPort)
	auth := smtp.PlainAuth("", e.cfg.From, e.cfg.Password, e.cfg.SMTPHost)

	if err := smtp.SendMail(addr, auth, e.cfg.From, []string{e.cfg.To}, []byte(msg.String())); err != nil {
		return fmt.Errorf("digest smtp send: %w", err)
	}
	return nil
}

// FormatDigest renders the plain-text digest body: a header, then one
// section per tier with entries already in batch order.
func FormatDigest(batch []domain.ScoredPosting, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Job Digest for %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Total: %d new principal/staff AI roles\n\n", len(batch))
	b.WriteString(strings.Repeat("=", 70) + "\n\n")

	byTier := make(map[domain.Tier][]domain.ScoredPosting)
	for _, p := range batch {
		byTier[p.Tier] = append(byTier[p.Tier], p)
	}

	for _, tier := range domain.DigestOrder {
		postings := byTier[tier]
		if len(postings) == 0 {
			continue
		}

		fmt.Fprintf(&b, "%s %s PRIORITY (%d roles)\n", tierEmoji(tier), tier, len(postings))
		b.WriteString(strings.Repeat("-", 70) + "\n\n")

		for _, p := range postings {
			fmt.Fprintf(&b, "🏢 %s\n", p.Company)
			fmt.Fprintf(&b, "📋 %s\n", p.Title)
			fmt.Fprintf(&b, "⭐ Match Score: %d/100\n", p.Score)
			fmt.Fprintf(&b, "🔗 %s\n\n", p.URL)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func tierEmoji(t domain.Tier) string {
	switch t {
	case domain.TierHigh:
		return "🔴"
	case domain.TierMedium:
		return "🟡"
	default:
		return "⚪"
	}
}
