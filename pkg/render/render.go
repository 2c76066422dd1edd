package render

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"botforge/internal/entity"
)

const (
	tablePreviewLimit = 5
	listPreviewLimit  = 3
	cardsPreviewLimit = 2
)

// DatasetSource resolves the dataset referenced by a csv payload. The store
// satisfies this.
type DatasetSource interface {
	Dataset(name string) (entity.Dataset, bool)
}

// Renderer turns a trigger's response payload into a displayable HTML
// fragment. Render itself has no side effects; the embedded affordances
// (copy, run, download) only fire on later explicit user interaction.
type Renderer struct {
	datasets DatasetSource
}

func New(datasets DatasetSource) *Renderer {
	return &Renderer{datasets: datasets}
}

func (r *Renderer) Render(trigger entity.Trigger) string {
	switch data := trigger.ResponseData.(type) {
	case *entity.TextPayload:
		return data.Text

	case *entity.URLPayload:
		linkText := data.LinkText
		if linkText == "" {
			linkText = data.URL
		}
		target := ""
		if data.NewTab {
			target = ` target="_blank"`
		}
		return fmt.Sprintf(`<a href="%s"%s>%s</a>`, data.URL, target, linkText)

	case *entity.DocumentPayload:
		title := data.Title
		if title == "" {
			title = "Document"
		}
		return fmt.Sprintf(`<a href="%s" target="_blank"><i class="bi bi-file-earmark"></i> %s</a>`, data.URL, title)

	case *entity.EmailPayload:
		link := fmt.Sprintf("mailto:%s?subject=%s", data.Recipient, encodeComponent(data.Subject))
		return fmt.Sprintf(`<a href="%s"><i class="bi bi-envelope"></i> Send Email: %s</a>`, link, data.Subject)

	case *entity.QuotePayload:
		return fmt.Sprintf(`<div class="quote-response">%s</div>`, data.Content)

	case *entity.CSVPayload:
		return r.renderCSV(data)

	case *entity.HTMLPayload:
		return renderHTML(data)

	case *entity.JavaScriptPayload:
		return renderJavaScript(data)

	case *entity.TemplatePayload:
		return renderTemplate(data)

	case nil:
		return "Response data is missing."

	default:
		return "Response type not implemented yet."
	}
}

func (r *Renderer) renderCSV(data *entity.CSVPayload) string {
	dataset, ok := r.datasets.Dataset(data.File)
	if !ok || dataset.Len() == 0 {
		return "CSV data not found."
	}

	format := data.DisplayFormat
	if format == "" {
		format = entity.DisplayTable
	}

	switch format {
	case entity.DisplayTable:
		return RenderTable(dataset)
	case entity.DisplayList:
		return renderList(dataset)
	case entity.DisplayCards:
		return renderCards(dataset)
	default:
		return "Invalid display format."
	}
}

// RenderTable emits a header row plus up to five data rows, with a
// "Showing 5 of N" note when the dataset is larger. Exported so the dataset
// preview endpoint can reuse it.
func RenderTable(dataset entity.Dataset) string {
	if dataset.Len() == 0 {
		return "No data available."
	}

	var b strings.Builder
	b.WriteString(`<table class="table table-sm table-dark">`)
	b.WriteString("<thead><tr>")
	for _, header := range dataset.Headers {
		fmt.Fprintf(&b, "<th>%s</th>", header)
	}
	b.WriteString("</tr></thead><tbody>")

	for _, record := range limitRecords(dataset, tablePreviewLimit) {
		b.WriteString("<tr>")
		for _, header := range dataset.Headers {
			fmt.Fprintf(&b, "<td>%s</td>", record[header])
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")

	if dataset.Len() > tablePreviewLimit {
		fmt.Fprintf(&b, `<small class="text-muted">Showing %d of %d records</small>`, tablePreviewLimit, dataset.Len())
	}

	return b.String()
}

func renderList(dataset entity.Dataset) string {
	if dataset.Len() == 0 {
		return "No data available."
	}

	var blocks []string
	for _, record := range limitRecords(dataset, listPreviewLimit) {
		var lines []string
		for _, header := range dataset.Headers {
			lines = append(lines, fmt.Sprintf("<strong>%s:</strong> %s", header, record[header]))
		}
		blocks = append(blocks, strings.Join(lines, "<br>"))
	}

	out := strings.Join(blocks, "<hr>")
	if rest := dataset.Len() - listPreviewLimit; rest > 0 {
		out += fmt.Sprintf(`<br><small class="text-muted">And %d more...</small>`, rest)
	}

	return out
}

func renderCards(dataset entity.Dataset) string {
	if dataset.Len() == 0 {
		return "No data available."
	}

	var b strings.Builder
	for _, record := range limitRecords(dataset, cardsPreviewLimit) {
		b.WriteString(`<div class="card card-sm mb-2"><div class="card-body p-2">`)
		for _, header := range dataset.Headers {
			fmt.Fprintf(&b, `<div><small class="text-muted">%s:</small> %s</div>`, header, record[header])
		}
		b.WriteString("</div></div>")
	}

	if rest := dataset.Len() - cardsPreviewLimit; rest > 0 {
		fmt.Fprintf(&b, `<small class="text-muted">And %d more...</small>`, rest)
	}

	return b.String()
}

func renderHTML(data *entity.HTMLPayload) string {
	var b strings.Builder
	b.WriteString(`<div class="code-response">`)
	b.WriteString(`<div class="d-flex justify-content-between align-items-center mb-3">`)
	b.WriteString(`<h6><i class="bi bi-code-slash"></i> HTML Code Block</h6>`)
	fmt.Fprintf(&b, `<button class="btn btn-sm btn-outline-primary" onclick="copyToClipboard('%s')"><i class="bi bi-clipboard"></i> Copy</button>`, encode(data.HTMLCode))
	b.WriteString(`</div>`)
	b.WriteString(`<div class="live-preview-container">`)
	b.WriteString(`<div class="preview-toolbar"><span>Live Preview</span>`)
	fmt.Fprintf(&b, `<button class="btn btn-sm btn-primary" onclick="showCodeModal('HTML Code', '%s', '%s')"><i class="bi bi-eye"></i> View Full Code</button>`, encode(data.HTMLCode), encode(data.CustomCSS))
	b.WriteString(`</div>`)
	b.WriteString(`<div style="background: white; padding: 15px; border-radius: 0 0 8px 8px;">`)
	b.WriteString(data.HTMLCode)
	if data.CustomCSS != "" {
		fmt.Fprintf(&b, "<style>%s</style>", data.CustomCSS)
	}
	b.WriteString(`</div></div>`)
	b.WriteString(`<div class="integration-steps mt-3"><small><strong>Integration:</strong> Copy HTML code, paste in your website, ensure Bootstrap 5 is loaded</small></div>`)
	b.WriteString(`</div>`)
	return b.String()
}

func renderJavaScript(data *entity.JavaScriptPayload) string {
	var b strings.Builder
	b.WriteString(`<div class="code-response">`)
	b.WriteString(`<div class="d-flex justify-content-between align-items-center mb-3">`)
	b.WriteString(`<h6><i class="bi bi-braces"></i> JavaScript Function</h6>`)
	fmt.Fprintf(&b, `<button class="btn btn-sm btn-outline-primary" onclick="copyToClipboard('%s')"><i class="bi bi-clipboard"></i> Copy JS</button>`, encode(data.JSCode))
	b.WriteString(`</div>`)
	b.WriteString(`<div class="feature-highlight">`)
	fmt.Fprintf(&b, "<strong>Function Type:</strong> %s<br>", orDefault(data.JSFunction, "Custom function"))
	if data.TargetElement != "" {
		fmt.Fprintf(&b, "<strong>Target Element:</strong> #%s<br>", data.TargetElement)
	}
	fmt.Fprintf(&b, `<button class="btn btn-sm btn-success mt-2" onclick="runJavaScriptCode('%s', '%s')"><i class="bi bi-play"></i> Test Function</button>`, encode(data.JSCode), encode(data.JSHTMLCode))
	b.WriteString(`</div>`)
	fmt.Fprintf(&b, `<div class="code-suggestion">%s</div>`, codeExcerpt(data.JSCode))
	b.WriteString(`<div class="integration-steps"><small><strong>Setup:</strong> 1) Add HTML structure 2) Include JS before &lt;/body&gt; 3) Test in console</small></div>`)
	b.WriteString(`</div>`)
	return b.String()
}

func renderTemplate(data *entity.TemplatePayload) string {
	var b strings.Builder
	b.WriteString(`<div class="code-response">`)
	b.WriteString(`<div class="d-flex justify-content-between align-items-center mb-3">`)
	fmt.Fprintf(&b, `<h6><i class="bi bi-palette"></i> %s Template</h6>`, capitalize(data.TemplateType))
	b.WriteString(`<div>`)
	fmt.Fprintf(&b, `<button class="btn btn-sm btn-outline-primary me-2" onclick="downloadTemplate('%s', '%s', '%s')"><i class="bi bi-download"></i> Download</button>`, encode(data.GeneratedHTML), encode(data.GeneratedCSS), data.ProjectName)
	fmt.Fprintf(&b, `<button class="btn btn-sm btn-primary" onclick="previewTemplate('%s', '%s')"><i class="bi bi-eye"></i> Preview</button>`, encode(data.GeneratedHTML), encode(data.GeneratedCSS))
	b.WriteString(`</div></div>`)
	b.WriteString(`<div class="live-preview-container">`)
	fmt.Fprintf(&b, `<div class="preview-toolbar"><span>Template Preview - %s</span><span class="badge bg-secondary">%s</span></div>`, data.ProjectName, data.TemplateType)
	fmt.Fprintf(&b, `<div style="background: white; min-height: 200px; overflow: hidden;"><iframe srcdoc="%s" style="width: 100%%; height: 200px; border: none;"></iframe></div>`, strings.ReplaceAll(data.GeneratedHTML, `"`, "&quot;"))
	b.WriteString(`</div>`)
	b.WriteString(`<div class="integration-steps mt-3"><small><strong>Deployment:</strong> Download files, upload to hosting, customize content, test responsive design</small></div>`)
	b.WriteString(`</div>`)
	return b.String()
}

func limitRecords(dataset entity.Dataset, limit int) []entity.Record {
	if dataset.Len() > limit {
		return dataset.Records[:limit]
	}
	return dataset.Records
}

func codeExcerpt(code string) string {
	lines := strings.Split(code, "\n")
	if len(lines) <= 3 {
		return code
	}
	return strings.Join(lines[:3], "\n") + "\n..."
}

func encode(raw string) string {
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

func encodeComponent(raw string) string {
	return strings.ReplaceAll(url.QueryEscape(raw), "+", "%20")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
