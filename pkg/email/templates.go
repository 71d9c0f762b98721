package email

import "fmt"

// BookingEmailData contains the data needed for booking notice templates.
type BookingEmailData struct {
	Name    string
	Email   string
	Date    string
	Time    string
	AppName string
}

// BuildBookingConfirmationEmail creates the notice sent after a slot is booked.
func BuildBookingConfirmationEmail(data BookingEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Doctors House"
	}

	name := data.Name
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Your %s appointment is booked", appName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment is confirmed for %s at %s.

Submitting the same date and time again will cancel this booking.

Thanks,
The %s Team`,
		name, data.Date, data.Time, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #07332f;">Hi %s,</h2>
    <p>Your appointment is confirmed for <strong>%s</strong> at <strong>%s</strong>.</p>
    <p>Submitting the same date and time again will cancel this booking.</p>
    <p>Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.Date, data.Time, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildBookingCancellationEmail creates the notice sent after a slot is cancelled.
func BuildBookingCancellationEmail(data BookingEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Doctors House"
	}

	name := data.Name
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Your %s appointment was cancelled", appName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment for %s at %s has been cancelled.

You can book the slot again at any time.

Thanks,
The %s Team`,
		name, data.Date, data.Time, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #07332f;">Hi %s,</h2>
    <p>Your appointment for <strong>%s</strong> at <strong>%s</strong> has been cancelled.</p>
    <p>You can book the slot again at any time.</p>
    <p>Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.Date, data.Time, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
