package utils

import (
	"fmt"
	"log"

	"github.com/AshleyImmanuel/recovery-log/config"

	"github.com/go-resty/resty/v2"
)

// SendWhatsAppUpdate pushes a payment-review update to the buyer's WhatsApp
// number through the SMS gateway. Best effort: failures are logged, never
// surfaced to the admin flow that triggered them.
func SendWhatsAppUpdate(number, courseTitle, status string) {
	if number == "" || config.AppConfig.LocalTextApi == "defaultSecret" {
		return
	}

	message := fmt.Sprintf("Recovery Log: your payment for \"%s\" was %s.", courseTitle, status)

	client := resty.New()
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"authorization": config.AppConfig.LocalTextApi,
			"route":         "q",
			"message":       message,
			"numbers":       number,
		}).
		Get(config.AppConfig.LocalTextApiUrl)
	if err != nil {
		log.Printf("Error sending WhatsApp update to %s: %v", number, err)
		return
	}
	if resp.StatusCode() != 200 {
		log.Printf("WhatsApp update to %s failed, response code: %d", number, resp.StatusCode())
	}
}
