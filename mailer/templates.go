package mailer

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/hariyalifarms/hariyali-backend-go/models"
)

type statusTemplate struct {
	subject string
	text    string
}

// Notification copy per order status. Nothing here checks what the order's
// status currently is: an admin may re-send any status email at any time.
var statusTemplates = map[models.OrderStatus]statusTemplate{
	models.OrderStatusPending: {
		subject: "We received your order #%s",
		text:    "Hi {{.CustomerName}},\n\nThanks for your order. We'll let you know as soon as it's confirmed.\n\nOrder total: ₹{{.Total.Display}}\n",
	},
	models.OrderStatusAccepted: {
		subject: "Your order #%s is confirmed",
		text:    "Hi {{.CustomerName}},\n\nYour order has been confirmed and is being prepared for dispatch.\n\nOrder total: ₹{{.Total.Display}}\n",
	},
	models.OrderStatusRejected: {
		subject: "About your order #%s",
		text:    "Hi {{.CustomerName}},\n\nWe're sorry - we couldn't fulfil your order. Any payment made will be refunded.\n",
	},
	models.OrderStatusShipped: {
		subject: "Your order #%s is on its way",
		text:    "Hi {{.CustomerName}},\n\nYour order has shipped.{{if .TrackingID}}\nTracking ID: {{.TrackingID}}{{end}}{{if .ShippingURL}}\nTrack it here: {{.ShippingURL}}{{end}}\n",
	},
	models.OrderStatusDelivered: {
		subject: "Your order #%s was delivered",
		text:    "Hi {{.CustomerName}},\n\nYour order was delivered. We hope you enjoy it!\n",
	},
}

const htmlWrapper = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
<pre style="font-family: inherit; white-space: pre-wrap;">{{.Body}}</pre>
<p style="font-size: 12px; color: #666;">Hariyali Farms - fresh from our organic farms.</p>
</div>
</body>
</html>`

// BuildStatusEmail renders the notification for the given status using the
// order's snapshot data.
func BuildStatusEmail(order models.Order, status models.OrderStatus) (Message, error) {
	tpl, ok := statusTemplates[status]
	if !ok {
		return Message{}, fmt.Errorf("no notification template for status %q", status)
	}

	t, err := template.New("body").Parse(tpl.text)
	if err != nil {
		return Message{}, err
	}
	var body bytes.Buffer
	if err := t.Execute(&body, order); err != nil {
		return Message{}, err
	}

	wrapper := template.Must(template.New("html").Parse(htmlWrapper))
	var html bytes.Buffer
	if err := wrapper.Execute(&html, struct{ Body string }{body.String()}); err != nil {
		return Message{}, err
	}

	return Message{
		To:      order.Email,
		Subject: fmt.Sprintf(tpl.subject, order.ID.Hex()),
		Text:    body.String(),
		HTML:    html.String(),
	}, nil
}
