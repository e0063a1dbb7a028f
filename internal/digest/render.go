package digest

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Content is everything the digest template needs.
type Content struct {
	Date        string
	Intro       string // Optional LLM-generated intro; empty when disabled
	ClosingSoon []Entry
	New         []Entry
	SiteURL     string
}

const digestTemplate = `<!DOCTYPE html>
<html>
<body style="margin: 0; padding: 0; background-color: #F5F2EF; font-family: Georgia, 'Times New Roman', serif; color: #1A1A1A;">
  <div style="max-width: 600px; margin: 0 auto; padding: 32px 20px;">
    <h1 style="font-size: 22px; font-weight: 500; margin: 0 0 4px 0;">Fellowship &amp; Grant Digest</h1>
    <p style="font-size: 13px; color: #9A9590; margin: 0 0 24px 0;">{{.Date}}
      {{- if .ClosingSoon}} &middot; <strong style="color: #1A1A1A;">{{len .ClosingSoon}}</strong> CLOSING SOON{{end}}
      {{- if .New}} &middot; <strong style="color: #1A1A1A;">{{len .New}}</strong> NEW{{end}}</p>

    {{if .Intro}}<p style="font-size: 14px; line-height: 1.6; color: #4A4641; margin: 0 0 24px 0;">{{.Intro}}</p>{{end}}

    {{if .ClosingSoon}}
    <h2 style="font-size: 13px; letter-spacing: 0.08em; text-transform: uppercase; color: #C26E4B; margin: 32px 0 12px 0;">Closing Soon</h2>
    {{range .ClosingSoon}}{{template "card" .}}{{end}}
    {{else}}
    <p style="margin-top: 32px; color: #9A9590; font-style: italic;">No opportunities closing in the next 14 days.</p>
    {{end}}

    {{if .New}}
    <h2 style="font-size: 13px; letter-spacing: 0.08em; text-transform: uppercase; color: #6C6863; margin: 32px 0 12px 0;">New This Cycle</h2>
    {{range .New}}{{template "card" .}}{{end}}
    {{end}}

    {{if .SiteURL}}
    <div style="text-align: center; margin: 40px 0 16px 0;">
      <a href="{{.SiteURL}}" style="display: inline-block; padding: 14px 28px; background-color: #1A1A1A; color: #FFFFFF; font-size: 12px; letter-spacing: 0.05em; text-transform: uppercase; text-decoration: none; border-radius: 3px;">View All Opportunities</a>
    </div>
    {{end}}
  </div>
</body>
</html>

{{define "card"}}
<div style="background-color: {{if .ClosingSoon}}#FBF5F2{{else}}#FFFFFF{{end}}; border: 1px solid #E8E3DE; border-radius: 4px; padding: 20px; margin-bottom: 12px;">
  {{if .ClosingSoon}}<span style="font-size: 11px; letter-spacing: 0.06em; text-transform: uppercase; color: #C26E4B;">Closing Soon</span>{{end}}
  <h3 style="margin: 0 0 8px 0; font-size: 16px; font-weight: 500; line-height: 1.4;">{{.Title}}</h3>
  <p style="margin: 0 0 8px 0; font-size: 12px; color: #9A9590;">
    {{if .Type}}{{upper .Type}} &middot; {{end}}{{.Source}}
    {{- if .FundingSize}} &middot; <span style="font-weight: 600; color: #1A1A1A;">{{.FundingSize}}</span>{{end}}
    {{- if .Deadline}} &middot; <span style="color: {{if .ClosingSoon}}#C26E4B{{else}}#6C6863{{end}};">Deadline: {{.Deadline}}</span>{{end}}
  </p>
  {{if .Description}}<p style="margin: 0; font-size: 13px; line-height: 1.5; color: #6C6863;">{{clip .Description 200}}</p>{{end}}
  {{if .Eligibility}}<p style="margin: 8px 0 0 0; font-size: 13px; line-height: 1.5; color: #9A9590;"><span style="color: #6C6863;">Eligibility:</span> {{.Eligibility}}</p>{{end}}
  {{if .URL}}<p style="margin: 12px 0 0 0;"><a href="{{.URL}}" style="font-size: 12px; letter-spacing: 0.05em; text-transform: uppercase; color: #9A9590; text-decoration: none;">View Opportunity &rarr;</a></p>{{end}}
</div>
{{end}}`

var tmpl = template.Must(template.New("digest").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
	"clip":  clip,
}).Parse(digestTemplate))

// Render produces the digest HTML.
func Render(content Content) (string, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, content); err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return buf.String(), nil
}

// BuildContent assembles digest content from the active set.
func BuildContent(closing, fresh []Entry, siteURL, intro string, now time.Time) Content {
	return Content{
		Date:        now.Format("January 2, 2006"),
		Intro:       intro,
		ClosingSoon: closing,
		New:         fresh,
		SiteURL:     siteURL,
	}
}

func clip(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
