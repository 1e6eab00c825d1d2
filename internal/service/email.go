package service

import (
	"context"
	"fmt"

	"github.com/TangibleTNFT/tangible-marketplace/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{apiKey: apiKey, from: from, fromName: fromName}
}

func (s *emailService) SendClaimableRentNotice(ctx context.Context, email string, tokenID int64, rentToken, amount string) error {
	logger.ExternalServiceCall("sendgrid", "SendClaimableRentNotice", "to", email, "token_id", tokenID)

	subject := fmt.Sprintf("Rent ready to claim for asset #%d", tokenID)
	body := fmt.Sprintf(
		"Hello,\n\nAsset #%d has %s %s of rental income ready to claim.\n\nLog in to claim it at any time; unclaimed rent never expires.\n\nThe Tangible Marketplace Team",
		tokenID, amount, rentToken)

	message := mail.NewSingleEmail(
		mail.NewEmail(s.fromName, s.from),
		subject,
		mail.NewEmail("", email),
		body,
		"",
	)
	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "SendClaimableRentNotice", err, "to", email)
	if err != nil {
		return fmt.Errorf("send claimable rent notice: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("send claimable rent notice: sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
