package notification

import "html/template"

var customerTemplate = template.Must(template.New("customer").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #C41E3A;">Order Confirmation - {{.BusinessName}}</h2>
  <p>Dear {{.Order.CustomerName}},</p>
  <p>Thank you for your order! Your order has been successfully placed.</p>

  <div style="background-color: #f8f9fa; padding: 20px; margin: 20px 0; border-radius: 8px;">
    <h3>Order Details</h3>
    <p><strong>Order ID:</strong> {{.Order.OrderID}}</p>
    <p><strong>Total Amount:</strong> &#8377;{{.TotalAmount}}</p>
    <p><strong>Total Sets:</strong> {{.Order.TotalSets}}</p>
  </div>

  <div style="background-color: #f8f9fa; padding: 20px; margin: 20px 0; border-radius: 8px;">
    <h3>Delivery Address</h3>
    <p>{{.Order.CustomerAddress}}<br>
    {{.Order.CustomerCity}}, {{.Order.CustomerState}} - {{.Order.CustomerPincode}}</p>
  </div>

  <p>We will process your order and contact you soon with further updates.</p>
  <p>For any queries, please contact us at {{.BusinessEmail}}</p>

  <p>Best regards,<br>{{.BusinessName}} Team</p>
</div>`))

var ownerTemplate = template.Must(template.New("owner").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #C41E3A;">New Order Received - {{.BusinessName}}</h2>

  <div style="background-color: #f8f9fa; padding: 20px; margin: 20px 0; border-radius: 8px;">
    <h3>Order Information</h3>
    <p><strong>Order ID:</strong> {{.Order.OrderID}}</p>
    <p><strong>Order Date:</strong> {{.OrderDate}}</p>
    <p><strong>Total Amount:</strong> &#8377;{{.TotalAmount}}</p>
    <p><strong>Total Sets:</strong> {{.Order.TotalSets}}</p>
  </div>

  <div style="background-color: #f8f9fa; padding: 20px; margin: 20px 0; border-radius: 8px;">
    <h3>Customer Details</h3>
    <p><strong>Name:</strong> {{.Order.CustomerName}}</p>
    <p><strong>Email:</strong> {{.Order.CustomerEmail}}</p>
    <p><strong>Phone:</strong> {{.Order.CustomerPhone}}</p>
    <p><strong>Address:</strong> {{.Order.CustomerAddress}}, {{.Order.CustomerCity}}, {{.Order.CustomerState}} - {{.Order.CustomerPincode}}</p>
    {{if .Order.CustomerMessage}}<p><strong>Message:</strong> {{.Order.CustomerMessage}}</p>{{end}}
  </div>

  <div style="background-color: #f8f9fa; padding: 20px; margin: 20px 0; border-radius: 8px;">
    <h3>Order Items</h3>
    <table style="width: 100%; border-collapse: collapse;">
      <thead>
        <tr style="background-color: #e9ecef;">
          <th style="padding: 10px; text-align: left; border: 1px solid #dee2e6;">Product</th>
          <th style="padding: 10px; text-align: left; border: 1px solid #dee2e6;">Category</th>
          <th style="padding: 10px; text-align: left; border: 1px solid #dee2e6;">Sets</th>
          <th style="padding: 10px; text-align: left; border: 1px solid #dee2e6;">Pieces/Set</th>
          <th style="padding: 10px; text-align: left; border: 1px solid #dee2e6;">Price/Set</th>
          <th style="padding: 10px; text-align: left; border: 1px solid #dee2e6;">Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}<tr>
          <td>{{.Name}}</td>
          <td>{{.Category}}</td>
          <td>{{.Quantity}}</td>
          <td>{{.PiecesPerSet}}</td>
          <td>&#8377;{{.PricePerSet}}</td>
          <td>&#8377;{{.LineTotal}}</td>
        </tr>{{end}}
      </tbody>
    </table>
  </div>

  <p>Please process this order and contact the customer for payment and delivery arrangements.</p>
</div>`))
