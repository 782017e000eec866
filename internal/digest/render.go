package digest

import (
	"html/template"
	"io"

	"github.com/feedworks/feedlens/pkg/types"
)

// digestTemplate renders a DigestView as a standalone HTML page. Both this
// page and the JSON digest endpoint are fed by the same Aggregate output,
// so the two presentations cannot drift apart.
var digestTemplate = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<head>
	<title>Daily Feedback Summary</title>
	<style>
		body {
			font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
			max-width: 900px;
			margin: 0 auto;
			padding: 20px;
			line-height: 1.6;
			color: #333;
			background: #f8f9fa;
		}
		.header {
			background: white;
			padding: 30px;
			border-radius: 12px;
			box-shadow: 0 2px 10px rgba(0,0,0,0.1);
			margin-bottom: 30px;
			text-align: center;
		}
		h1 { color: #2c3e50; margin: 0 0 10px 0; font-size: 2.2em; }
		h2 { color: #2c3e50; margin-top: 0; }
		.datetime { color: #7f8c8d; font-size: 14px; }
		.stats-bar {
			display: flex;
			justify-content: space-around;
			background: white;
			padding: 20px;
			border-radius: 12px;
			box-shadow: 0 2px 10px rgba(0,0,0,0.1);
			margin-bottom: 30px;
		}
		.stat-item { text-align: center; }
		.stat-value { font-size: 2em; font-weight: bold; color: #2c3e50; }
		.stat-label { color: #7f8c8d; font-size: 14px; }
		.section {
			background: white;
			padding: 30px;
			border-radius: 12px;
			box-shadow: 0 2px 10px rgba(0,0,0,0.1);
			margin-bottom: 30px;
		}
		.urgent-item {
			border-left: 4px solid #e74c3c;
			padding: 10px 15px;
			margin-bottom: 15px;
			background: #fdf3f2;
			border-radius: 0 8px 8px 0;
		}
		.urgent-source { font-weight: bold; color: #e74c3c; }
		.urgent-summary { color: #555; }
		.theme-row {
			display: flex;
			justify-content: space-between;
			padding: 8px 0;
			border-bottom: 1px solid #ecf0f1;
		}
		.theme-count {
			background: #3498db;
			color: white;
			border-radius: 12px;
			padding: 2px 12px;
			font-size: 14px;
		}
		.empty { color: #7f8c8d; font-style: italic; }
	</style>
</head>
<body>
	<div class="header">
		<h1>Daily Feedback Summary</h1>
		<div class="datetime">Generated at {{.GeneratedAt}}</div>
	</div>
	<div class="stats-bar">
		<div class="stat-item">
			<div class="stat-value">{{.Total}}</div>
			<div class="stat-label">Total Items</div>
		</div>
		<div class="stat-item">
			<div class="stat-value">{{len .Urgent}}</div>
			<div class="stat-label">Urgent</div>
		</div>
		<div class="stat-item">
			<div class="stat-value">{{len .TopThemes}}</div>
			<div class="stat-label">Themes</div>
		</div>
	</div>
	<div class="section">
		<h2>🚨 Urgent Items</h2>
		{{if .Urgent}}{{range .Urgent}}
		<div class="urgent-item">
			<div class="urgent-source">{{.Source}}</div>
			<div>{{.Text}}</div>
			<div class="urgent-summary">{{.Summary}}</div>
		</div>
		{{end}}{{else}}
		<p class="empty">No urgent feedback today.</p>
		{{end}}
	</div>
	<div class="section">
		<h2>📊 Top Themes</h2>
		{{if .TopThemes}}{{range .TopThemes}}
		<div class="theme-row">
			<span>{{.Theme}}</span>
			<span class="theme-count">{{.Count}}</span>
		</div>
		{{end}}{{else}}
		<p class="empty">No feedback recorded yet.</p>
		{{end}}
	</div>
</body>
</html>
`))

// RenderHTML writes the digest as an HTML page
func RenderHTML(w io.Writer, view types.DigestView) error {
	return digestTemplate.Execute(w, view)
}
