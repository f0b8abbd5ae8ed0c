package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"upperskills/internal/model"
)

const brand = "UpperSkills"

var funcs = template.FuncMap{
	// nl2br 先跳脫再把換行轉成 <br>
	"nl2br": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
	"datetime": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04 MST")
	},
}

var (
	alertTmpl = template.Must(template.New("alert").Funcs(funcs).Parse(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Message:</strong></p>
<p>{{nl2br .Message}}</p>
<p><strong>Submitted:</strong> {{datetime .CreatedAt}}</p>
`))

	confirmTmpl = template.Must(template.New("confirm").Funcs(funcs).Parse(`<h2>Thank you for reaching out!</h2>
<p>Hi {{.Name}},</p>
<p>We've received your message and will get back to you within 24 hours.</p>
<p><strong>Your message:</strong></p>
<p>{{nl2br .Message}}</p>
<br>
<p>Best regards,<br>The UpperSkills Team</p>
`))

	reminderTmpl = template.Must(template.New("reminder").Parse(`<h2>Pending contact messages</h2>
<p>{{.Count}} contact message(s) have been waiting for more than {{.Age}}.</p>
<p>Please review them in the admin dashboard.</p>
`))
)

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// ContactAlert 通知營運信箱有新的聯絡表單
func ContactAlert(inbox string, c *model.Contact) (Message, error) {
	body, err := render(alertTmpl, c)
	if err != nil {
		return Message{}, err
	}
	return Message{To: inbox, Subject: "New Contact Form Submission - " + brand, HTML: body}, nil
}

// ContactConfirmation 寄給送出表單的人
func ContactConfirmation(c *model.Contact) (Message, error) {
	body, err := render(confirmTmpl, c)
	if err != nil {
		return Message{}, err
	}
	return Message{To: c.Email, Subject: "Thank you for contacting " + brand, HTML: body}, nil
}

// PendingReminder 提醒營運信箱仍有逾時未處理的訊息
func PendingReminder(inbox string, count int, age time.Duration) (Message, error) {
	body, err := render(reminderTmpl, struct {
		Count int
		Age   time.Duration
	}{count, age})
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      inbox,
		Subject: fmt.Sprintf("%d pending contact message(s) - %s", count, brand),
		HTML:    body,
	}, nil
}
