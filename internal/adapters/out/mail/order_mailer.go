// internal/adapters/out/mail/order_mailer.go
package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	orderdom "storefront/internal/domain/order"
)

// OrderMailer renders and sends the order-confirmation email. It implements
// usecase.OrderMailer on top of an EmailClient.
type OrderMailer struct {
	client      EmailClient
	fromAddress string
}

func NewOrderMailer(client EmailClient, fromAddress string) *OrderMailer {
	return &OrderMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
	}
}

// SendOrderConfirmation mails the order id, timestamp and product id list to
// the buyer. The caller treats failures as best-effort.
func (m *OrderMailer) SendOrderConfirmation(ctx context.Context, toEmail string, o orderdom.Order) error {
	if m == nil || m.client == nil {
		return fmt.Errorf("order mailer is not configured")
	}

	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return fmt.Errorf("recipient address is empty")
	}

	subject := fmt.Sprintf("Order Confirmation - %s", o.ID)
	orderedAt := o.OrderedAt.UTC().Format(time.RFC3339)

	plain := fmt.Sprintf(`Thank you for your order!

Order ID: %s
Ordered At: %s
Products: %s

We appreciate your business!`,
		o.ID, orderedAt, strings.Join(o.ProductIDs, ", "))

	var products strings.Builder
	for _, pid := range o.ProductIDs {
		products.WriteString("<div>" + pid + "</div>")
	}

	html := fmt.Sprintf(`<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: auto; border: 1px solid #ddd; padding: 20px;">
      <h2 style="color: #4CAF50; text-align: center;">Order Confirmation</h2>
      <p>Hi there,</p>
      <p>Thank you for your purchase! Here are your order details:</p>
      <table style="width: 100%%; border-collapse: collapse;">
        <tr>
          <td style="padding: 8px; border: 1px solid #ddd;">Order ID:</td>
          <td style="padding: 8px; border: 1px solid #ddd;">%s</td>
        </tr>
        <tr>
          <td style="padding: 8px; border: 1px solid #ddd;">Ordered At:</td>
          <td style="padding: 8px; border: 1px solid #ddd;">%s</td>
        </tr>
        <tr>
          <td style="padding: 8px; border: 1px solid #ddd;">Products:</td>
          <td style="padding: 8px; border: 1px solid #ddd;">%s</td>
        </tr>
      </table>
      <p style="margin-top: 20px;">If you have any questions, feel free to contact our support team.</p>
    </div>
  </body>
</html>`, o.ID, orderedAt, products.String())

	return m.client.Send(ctx, m.fromAddress, toEmail, subject, plain, html)
}
