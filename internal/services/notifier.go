package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/doctors-portal/api/internal/models"
)

const textbeltURL = "https://textbelt.com/text"

// Notifier sends booking confirmation SMS through the Textbelt API.
// Sends are fire-and-forget; failures are logged, never surfaced to the
// request that triggered them.
type Notifier struct {
	apiKey string
	url    string
	log    *logrus.Logger
}

func NewNotifier(apiKey string, log *logrus.Logger) *Notifier {
	return &Notifier{apiKey: apiKey, url: textbeltURL, log: log}
}

func (n *Notifier) SendBookingConfirmationSMS(booking *models.Booking) {
	if n.apiKey == "" {
		return
	}
	if booking.Phone == "" {
		n.log.Debug("SMS not sent: booking has no phone number")
		return
	}

	smsBody := fmt.Sprintf(
		"Booking confirmed: %s at %s on %s for %s.",
		booking.Treatment,
		booking.Slot,
		booking.Date,
		booking.PatientName,
	)

	// Send in a goroutine so it doesn't block the API response.
	go n.sendSMS(booking.Phone, smsBody)
}

func (n *Notifier) sendSMS(phone, message string) {
	postBody, _ := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     n.apiKey,
	})

	resp, err := http.Post(n.url, "application/json", bytes.NewBuffer(postBody))
	if err != nil {
		n.log.WithError(err).WithField("phone", phone).Warn("failed to reach Textbelt")
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		n.log.WithError(err).WithField("phone", phone).Warn("failed to decode Textbelt response")
		return
	}

	if success, _ := result["success"].(bool); !success {
		errorMsg, _ := result["error"].(string)
		n.log.WithFields(logrus.Fields{"phone": phone, "reason": errorMsg}).Warn("Textbelt rejected SMS")
		return
	}
	n.log.WithField("phone", phone).Info("booking confirmation SMS sent")
}
