package utils

import (
	"fmt"
	"strings"
	"time"

	"shophub_back_end/internal/models"
)

// GenerateOrderEmailHTML génère le corps HTML de l'e-mail de confirmation de commande
func GenerateOrderEmailHTML(order models.OrderData, businessURL string) string {
	var itemsHTML strings.Builder
	for _, item := range order.Items {
		variantsHTML := ""
		if item.Variants != "" {
			variantsHTML = fmt.Sprintf(`<br><small style="color: #6b7280;">%s</small>`, item.Variants)
		}
		itemsHTML.WriteString(fmt.Sprintf(`
              <div class="item">
                <div style="display: flex; justify-content: space-between;">
                  <div>
                    <strong>%s</strong>%s
                  </div>
                  <div style="text-align: right;">
                    <div>$%.2f × %d</div>
                    <strong>$%.2f</strong>
                  </div>
                </div>
              </div>`, item.Name, variantsHTML, item.Price, item.Quantity, item.Price*float64(item.Quantity)))
	}

	shippingHTML := "Free"
	if order.Shipping > 0 {
		shippingHTML = fmt.Sprintf("$%.2f", order.Shipping)
	}

	return fmt.Sprintf(`
    <!DOCTYPE html>
    <html>
    <head>
      <meta charset="utf-8">
      <meta name="viewport" content="width=device-width, initial-scale=1.0">
      <title>Order Confirmation</title>
      <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #0ea5e9 0%%, #d946ef 100%%); color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
        .content { background: #f9fafb; padding: 30px; }
        .order-info { background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px; }
        .item { border-bottom: 1px solid #e5e7eb; padding: 15px 0; }
        .item:last-child { border-bottom: none; }
        .total { background: white; padding: 20px; border-radius: 8px; margin-top: 20px; }
        .total-row { display: flex; justify-content: space-between; padding: 8px 0; }
        .total-row.grand { font-size: 1.2em; font-weight: bold; border-top: 2px solid #0ea5e9; padding-top: 15px; }
        .footer { text-align: center; padding: 20px; color: #6b7280; font-size: 0.875em; }
        .button { display: inline-block; background: #0ea5e9; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 20px 0; }
      </style>
    </head>
    <body>
      <div class="container">
        <div class="header">
          <h1 style="margin: 0;">Thank You for Your Order!</h1>
          <p style="margin: 10px 0 0;">Order #%s</p>
        </div>

        <div class="content">
          <div class="order-info">
            <h2 style="margin-top: 0;">Order Details</h2>
            <p><strong>Order ID:</strong> #%s</p>
            <p><strong>Email:</strong> %s</p>
            <p><strong>Order Date:</strong> %s</p>
          </div>

          <div class="order-info">
            <h2 style="margin-top: 0;">Items Ordered</h2>%s
          </div>

          <div class="total">
            <div class="total-row">
              <span>Subtotal:</span>
              <span>$%.2f</span>
            </div>
            <div class="total-row">
              <span>Shipping:</span>
              <span>%s</span>
            </div>
            <div class="total-row">
              <span>Tax:</span>
              <span>$%.2f</span>
            </div>
            <div class="total-row grand">
              <span>Total:</span>
              <span>$%.2f</span>
            </div>
          </div>

          <center>
            <a href="%s" class="button">
              Continue Shopping
            </a>
          </center>
        </div>

        <div class="footer">
          <p>Thank you for shopping with ShopHub!</p>
          <p>If you have any questions, contact us at support@shophub.com</p>
          <p>&copy; %d ShopHub. All rights reserved.</p>
        </div>
      </div>
    </body>
    </html>`,
		order.OrderID, order.OrderID, order.CustomerEmail,
		time.Now().Format("1/2/2006"), itemsHTML.String(),
		order.Subtotal, shippingHTML, order.Tax, order.Total,
		businessURL, time.Now().Year())
}

// GenerateOrderEmailText génère l'alternative texte brut du même e-mail
func GenerateOrderEmailText(order models.OrderData) string {
	var itemsText strings.Builder
	for _, item := range order.Items {
		variants := ""
		if item.Variants != "" {
			variants = fmt.Sprintf(" (%s)", item.Variants)
		}
		itemsText.WriteString(fmt.Sprintf("\n%s%s\n$%.2f × %d = $%.2f\n",
			item.Name, variants, item.Price, item.Quantity, item.Price*float64(item.Quantity)))
	}

	shippingText := "Free"
	if order.Shipping > 0 {
		shippingText = fmt.Sprintf("$%.2f", order.Shipping)
	}

	return strings.TrimSpace(fmt.Sprintf(`
Thank You for Your Order!
Order #%s

Order Details:
Order ID: #%s
Email: %s
Order Date: %s

Items Ordered:
%s
Order Summary:
Subtotal: $%.2f
Shipping: %s
Tax: $%.2f
Total: $%.2f

Thank you for shopping with ShopHub!
If you have any questions, contact us at support@shophub.com

© %d ShopHub. All rights reserved.`,
		order.OrderID, order.OrderID, order.CustomerEmail,
		time.Now().Format("1/2/2006"), itemsText.String(),
		order.Subtotal, shippingText, order.Tax, order.Total,
		time.Now().Year()))
}
