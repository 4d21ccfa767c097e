package mailer

import (
	"bytes"
	"html/template"
	"strings"

	"quaidirect/internal/domain/service"
)

// renderDropAlert returns the HTML body for a drop alert email
func renderDropAlert(alert *service.DropAlertEmail) (string, error) {
	tmpl := `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#f0f4f8;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;">
    <div style="max-width:500px;margin:40px auto;background:#ffffff;border-radius:16px;overflow:hidden;border:1px solid rgba(14,116,144,0.2);">
        <!-- Header -->
        <div style="background:linear-gradient(135deg,#0e7490 0%,#155e75 100%);padding:32px;text-align:center;">
            <h1 style="color:#fff;margin:0;font-size:28px;font-weight:700;">QuaiDirect</h1>
            <p style="color:rgba(255,255,255,0.85);margin:8px 0 0;font-size:14px;">Fresh catch alert</p>
        </div>

        <!-- Body -->
        <div style="padding:32px;">
            <p style="color:#0f172a;font-size:16px;line-height:1.6;margin:0 0 24px;">
                <strong style="color:#0e7490;">{{.FishermanName}}</strong> just announced a sale:
            </p>

            <div style="background:rgba(14,116,144,0.06);border:2px dashed rgba(14,116,144,0.3);border-radius:12px;padding:24px;margin:0 0 24px;">
                <p style="color:#0f172a;font-size:20px;font-weight:700;margin:0 0 12px;">{{.DropTitle}}</p>
                <p style="color:#475569;font-size:14px;margin:0 0 6px;">📍 {{.LocationName}}</p>
                <p style="color:#475569;font-size:14px;margin:0 0 6px;">🐟 {{.Species}}</p>
                <p style="color:#475569;font-size:14px;margin:0;">🕐 Sale starts {{.SaleStart}}</p>
            </div>

            {{if .DropURL}}
            <div style="text-align:center;margin:0 0 24px;">
                <a href="{{.DropURL}}" style="display:inline-block;background:#0e7490;color:#fff;text-decoration:none;padding:12px 32px;border-radius:8px;font-size:15px;font-weight:600;">View the drop</a>
            </div>
            {{end}}

            <p style="color:#64748b;font-size:13px;line-height:1.5;margin:0;">
                You receive this alert because you follow one of the offered species with a Premium+ subscription.
            </p>
        </div>

        <!-- Footer -->
        <div style="padding:16px 32px;border-top:1px solid rgba(14,116,144,0.1);text-align:center;">
            <p style="color:#94a3b8;font-size:12px;margin:0;">© 2026 QuaiDirect. All rights reserved.</p>
        </div>
    </div>
</body>
</html>`

	t, err := template.New("dropAlert").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = t.Execute(&buf, map[string]any{
		"FishermanName": alert.FishermanName,
		"DropTitle":     alert.DropTitle,
		"LocationName":  alert.LocationName,
		"Species":       strings.Join(alert.SpeciesNames, ", "),
		"SaleStart":     alert.SaleStartAt.Format("Mon 02 Jan 15:04"),
		"DropURL":       alert.DropURL,
	})

	return buf.String(), err
}
