// Package acknowledgment renders and delivers order acknowledgment
// letters. Delivery here logs instead of sending real mail.
package acknowledgment

import (
	"context"
	"log/slog"
	"strings"
	"text/template"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/domain"
)

const letterTemplate = `Dear {{.FirstName}} {{.LastName}},

Thank you for your order {{.OrderID}}.
Your total comes to {{.AmountToBill}} and will ship to {{.City}} {{.ZipCode}}.
`

// LetterCreator renders acknowledgment letters from a text template.
type LetterCreator struct {
	tmpl *template.Template
}

func NewLetterCreator() *LetterCreator {
	return &LetterCreator{
		tmpl: template.Must(template.New("acknowledgment").Parse(letterTemplate)),
	}
}

// CreateOrderAcknowledgmentLetter implements domain.AcknowledgmentLetterCreator.
func (c *LetterCreator) CreateOrderAcknowledgmentLetter(order domain.PricedOrder) domain.AcknowledgmentLetter {
	var sb strings.Builder
	err := c.tmpl.Execute(&sb, map[string]string{
		"FirstName":    order.CustomerInfo.Name.FirstName.String(),
		"LastName":     order.CustomerInfo.Name.LastName.String(),
		"OrderID":      order.OrderID.String(),
		"AmountToBill": order.AmountToBill.Value().String(),
		"City":         order.ShippingAddress.City.String(),
		"ZipCode":      order.ShippingAddress.ZipCode.String(),
	})
	if err != nil {
		// The template and its inputs are fixed, so this only fires on a
		// programming error. Fall back to a minimal letter.
		return domain.AcknowledgmentLetter("Thank you for your order " + order.OrderID.String())
	}
	return domain.AcknowledgmentLetter(sb.String())
}

// LogSender delivers acknowledgments to the log. The delivery outcome
// feeds back into the workflow's event derivation.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger.With("component", "acknowledgment")}
}

// SendOrderAcknowledgment implements domain.AcknowledgmentSender.
func (s *LogSender) SendOrderAcknowledgment(ctx context.Context, ack domain.OrderAcknowledgment) domain.SendResult {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "acknowledgment not sent",
			slog.String("email", ack.EmailAddress.String()),
			slog.Any("error", ctx.Err()))
		return domain.NotSent
	}

	s.logger.InfoContext(ctx, "acknowledgment sent",
		slog.String("email", ack.EmailAddress.String()),
		slog.Int("letter_bytes", len(ack.Letter)))
	return domain.Sent
}

// Compile-time interface checks.
var (
	_ domain.AcknowledgmentLetterCreator = (*LetterCreator)(nil)
	_ domain.AcknowledgmentSender        = (*LogSender)(nil)
)
