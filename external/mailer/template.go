package mailer

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/junianwoo/fyd-sub001/utils"
)

func localize(loc *i18n.Localizer, messageID string, data map[string]interface{}) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}

// renderAlertEmail builds the localized subject and HTML body of one
// accepting-patients alert
func renderAlertEmail(data AlertEmailData) (string, string) {
	loc := utils.NewLocalizer(data.Language)

	subject := localize(loc, "alert_email.subject", map[string]interface{}{
		"Label": data.Label,
	})
	intro := localize(loc, "alert_email.intro", map[string]interface{}{
		"ListingName": data.ListingName,
		"Label":       data.Label,
	})
	addressLabel := localize(loc, "alert_email.address_label", nil)
	phoneLabel := localize(loc, "alert_email.phone_label", nil)
	distanceLine := localize(loc, "alert_email.distance", map[string]interface{}{
		"Distance": fmt.Sprintf("%.1f", data.DistanceKm),
		"Label":    data.Label,
	})
	footer := localize(loc, "alert_email.footer", nil)

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; overflow: hidden; }
        .header { background-color: #2A7F62; color: white; padding: 20px; text-align: center; }
        .header h1 { margin: 0; font-size: 22px; }
        .content { padding: 30px; }
        .listing-box { background-color: #F0F7F4; border-left: 4px solid #2A7F62; padding: 15px; margin: 20px 0; }
        .footer { background-color: #f8f9fa; padding: 15px; text-align: center; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>%s</h1>
        </div>
        <div class="content">
            <p>%s</p>
            <div class="listing-box">
                <p><strong>%s:</strong> %s</p>
                <p><strong>%s:</strong> %s</p>
            </div>
            <p>%s</p>
        </div>
        <div class="footer">%s</div>
    </div>
</body>
</html>`,
		subject,
		intro,
		addressLabel, data.Address,
		phoneLabel, data.Phone,
		distanceLine,
		footer,
	)

	return subject, body
}
