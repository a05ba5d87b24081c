package report

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/sitepulse/backend/internal/application/adapter"
)

// ResendClient implements the adapter.ReportSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend report sender.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send delivers the report. One attempt; failures surface to the caller.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendReportInput) (*adapter.SendReportResult, error) {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to send report email: %w", err)
	}

	return &adapter.SendReportResult{
		MessageID: resp.Id,
	}, nil
}

// Ensure implementation satisfies the interface.
var _ adapter.ReportSender = (*ResendClient)(nil)
