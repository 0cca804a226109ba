package service

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	log "github.com/sirupsen/logrus"

	"vanrental/internal/entities"
)

// NotifyService mails booking activity to the operations mailbox
// (NOTIFY_EMAIL). Bookings carry no customer contact details, so the ops
// mailbox is the only recipient. Sending is fire-and-forget: failures are
// logged and never surfaced to the API caller.
type NotifyService struct{}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

func (s *NotifyService) BookingCreated(data entities.BookingEmailData) {
	subject := fmt.Sprintf("New booking #%d - %s", data.BookingID, data.CustomerName)
	body := fmt.Sprintf(
		"Booking #%d confirmed.\n\n"+
			"Customer: %s\n"+
			"Vehicle: %s\n"+
			"Branch: %s\n"+
			"Pick-up: %s\n"+
			"Return: %s\n"+
			"Total cost: %.2f\n",
		data.BookingID, data.CustomerName, data.VehicleDescription, data.BranchName,
		data.StartDateFormatted, data.EndDateFormatted, data.Cost,
	)
	s.send(subject, body)
}

func (s *NotifyService) BookingCancelled(data entities.BookingEmailData) {
	subject := fmt.Sprintf("Booking #%d cancelled - %s", data.BookingID, data.CustomerName)
	body := fmt.Sprintf(
		"Booking #%d has been cancelled.\n\n"+
			"Customer: %s\n"+
			"Vehicle: %s\n"+
			"Pick-up was: %s\n"+
			"Return was: %s\n",
		data.BookingID, data.CustomerName, data.VehicleDescription,
		data.StartDateFormatted, data.EndDateFormatted,
	)
	s.send(subject, body)
}

func (s *NotifyService) send(subject, body string) {
	toEmail := os.Getenv("NOTIFY_EMAIL")
	if toEmail == "" || os.Getenv("SENDGRID_API_KEY") == "" {
		// Notifications are optional; skip quietly when not configured.
		return
	}
	go func() {
		if err := SendEmailWithSendGrid(toEmail, "Operations", subject, body, ""); err != nil {
			log.WithError(err).Warn("booking notification email failed")
		}
	}()
}

func SendEmailWithSendGrid(toEmailAddress, toName, subject, plainTextContent, htmlContent string) error {
	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not set")
	}

	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL not set")
	}

	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Van Rental"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmailAddress)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(sendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email via SendGrid failed: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.WithFields(log.Fields{"to": toEmailAddress, "subject": subject}).Debug("email sent")
		return nil
	}
	return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
}
