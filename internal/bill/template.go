package bill

const billHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Service Estimate - {{.OrderCode}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Inter', 'Segoe UI', system-ui, sans-serif; line-height: 1.6; color: #2F2500; background: white; padding: 20px; }
.bill-container { max-width: 650px; margin: 0 auto; border: 2px solid #FFD11E; border-radius: 16px; padding: 40px; }
.header { text-align: center; border-bottom: 3px solid #FFD11E; margin-bottom: 35px; background: #FFF5CC; border-radius: 12px; padding: 25px; }
.admin-badge { display: inline-block; background: #2F2500; color: #FFD11E; font-weight: 700; padding: 4px 12px; border-radius: 999px; font-size: 12px; letter-spacing: 1px; }
.info-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 16px; margin-bottom: 30px; }
.info-label { font-size: 12px; color: #6b7280; text-transform: uppercase; }
.info-value { font-weight: 600; }
.section { margin-bottom: 28px; }
.section-title { font-weight: 700; margin-bottom: 10px; }
.items-table { width: 100%; border-collapse: collapse; }
.items-table th, .items-table td { padding: 8px; border-bottom: 1px solid #f3e8b0; text-align: left; }
.price-cell { text-align: right; white-space: nowrap; }
.bullets { margin: 6px 0 0 18px; color: #6b7280; font-size: 13px; }
.totals-section { border-top: 2px solid #FFD11E; padding-top: 16px; }
.total-row { display: flex; justify-content: space-between; padding: 4px 0; }
.final-total { font-size: 20px; font-weight: 800; border-top: 1px dashed #2F2500; margin-top: 8px; padding-top: 8px; }
.note { margin-top: 24px; background: #FFF5CC; border-radius: 8px; padding: 14px; font-size: 13px; }
.footer { text-align: center; margin-top: 30px; color: #6b7280; font-size: 13px; }
</style>
</head>
<body>
<div class="bill-container">
<div class="header">
<h1>CycleBees</h1>
<p>{{if .Confirmed}}Confirmed Order{{else}}Service Estimate{{end}}</p>
{{- if .AdminCopy}}
<span class="admin-badge">ADMIN COPY</span>
{{- end}}
</div>

<div class="info-grid">
<div class="info-item"><div class="info-label">Order ID</div><div class="info-value">{{.OrderCode}}</div></div>
<div class="info-item"><div class="info-label">Created</div><div class="info-value">{{date .CreatedAt}}</div></div>
<div class="info-item"><div class="info-label">{{.DateLabel}}</div><div class="info-value">{{.DateValue}}</div></div>
<div class="info-item"><div class="info-label">Customer</div><div class="info-value">{{.CustomerName}}</div></div>
<div class="info-item"><div class="info-label">Bike</div><div class="info-value">{{.BikeName}}</div></div>
</div>
{{if .RepairItems}}
<div class="section">
<div class="section-title">Repair Services</div>
<table class="items-table">
<thead><tr><th>Service</th><th class="price-cell">Amount</th></tr></thead>
<tbody>
{{- range .RepairItems}}
<tr><td>{{.Label}}</td><td class="price-cell">{{inr .PricePaise}}</td></tr>
{{- end}}
</tbody>
</table>
</div>
{{end}}
{{- if .ReplacementItems}}
<div class="section">
<div class="section-title">Replacement Parts</div>
<table class="items-table">
<thead><tr><th>Item</th><th class="price-cell">Amount</th></tr></thead>
<tbody>
{{- range .ReplacementItems}}
<tr><td>{{.Label}}</td><td class="price-cell">{{inr .PricePaise}}</td></tr>
{{- end}}
</tbody>
</table>
</div>
{{end}}
{{- if .Addons}}
<div class="section">
<div class="section-title">Add-on Services</div>
<table class="items-table">
<thead><tr><th>Service</th><th class="price-cell">Amount</th></tr></thead>
<tbody>
{{- range .Addons}}
<tr><td><strong>{{.Name}}</strong>{{if .Description}}<br><small>{{.Description}}</small>{{end}}</td><td class="price-cell">{{inr .PricePaise}}</td></tr>
{{- end}}
</tbody>
</table>
</div>
{{end}}
{{- if .Bundles}}
<div class="section">
<div class="section-title">Service Bundle</div>
<table class="items-table">
<thead><tr><th>Bundle</th><th class="price-cell">Amount</th></tr></thead>
<tbody>
{{- range .Bundles}}
<tr><td><strong>{{.Name}}</strong><ul class="bullets">{{range .BulletPoints}}<li>{{.}}</li>{{end}}</ul></td><td class="price-cell">{{inr .PricePaise}}</td></tr>
{{- end}}
</tbody>
</table>
</div>
{{end}}
<div class="section">
<div class="section-title">La Carte Services (Fixed charges, free services included)</div>
<table class="items-table">
<thead><tr><th>Service Package</th><th class="price-cell">Amount</th></tr></thead>
<tbody>
<tr><td><strong>Complete Service Package</strong><br><small>General service &amp; inspection report, full cleaning, tyre puncture check, air filling, oiling &amp; lubrication, fitting &amp; repair labour, tightening of loose parts, and pick &amp; drop or full service at your doorstep</small></td><td class="price-cell">{{inr .Totals.LaCartePaise}}</td></tr>
</tbody>
</table>
</div>

<div class="totals-section">
<div class="total-row"><span>Selected Services:</span><span>{{inr .Totals.SubtotalPaise}}</span></div>
{{- if .Totals.AddonsPaise}}
<div class="total-row"><span>Add-on Services:</span><span>{{inr .Totals.AddonsPaise}}</span></div>
{{- end}}
{{- if .Totals.BundlesPaise}}
<div class="total-row"><span>Service Bundle:</span><span>{{inr .Totals.BundlesPaise}}</span></div>
{{- end}}
<div class="total-row"><span>La Carte Services (Fixed):</span><span>{{inr .Totals.LaCartePaise}}</span></div>
<div class="total-row final-total"><span>Total Amount (GST Inclusive):</span><span>{{inr .Totals.TotalPaise}}</span></div>
</div>

<div class="note"><strong>Note:</strong> {{if .Confirmed}}This order has been confirmed by the customer. These are the agreed services and approximate charges. Final charges may vary based on actual work required.{{else}}This is an estimate for your bike service. Please show this to our mechanic to proceed with the selected services. Final charges may vary based on actual work required.{{end}}</div>

<div class="footer">
<p>Thank you for choosing CycleBees!</p>
<p>For any queries, contact us via WhatsApp</p>
<p>Generated on {{date .GeneratedAt}}</p>
</div>
</div>
</body>
</html>
`
