package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

type ResponseKind string

const (
	ResponseText       ResponseKind = "text"
	ResponseURL        ResponseKind = "url"
	ResponseDocument   ResponseKind = "document"
	ResponseEmail      ResponseKind = "email"
	ResponseQuote      ResponseKind = "quote"
	ResponseCSV        ResponseKind = "csv"
	ResponseHTML       ResponseKind = "html"
	ResponseJavaScript ResponseKind = "javascript"
	ResponseTemplate   ResponseKind = "template"
)

const (
	DisplayTable = "table"
	DisplayList  = "list"
	DisplayCards = "cards"
)

// ResponsePayload is the variant data attached to a trigger. Each kind
// carries its own required/optional fields; Validate reports the first
// missing required field so creation can be refused with a reason.
type ResponsePayload interface {
	Kind() ResponseKind
	Validate() error
}

type TextPayload struct {
	Text string `json:"text"`
}

func (p *TextPayload) Kind() ResponseKind { return ResponseText }

func (p *TextPayload) Validate() error {
	if p.Text == "" {
		return errors.New("response text is required")
	}
	return nil
}

type URLPayload struct {
	URL      string `json:"url"`
	LinkText string `json:"linkText,omitempty"`
	NewTab   bool   `json:"newTab"`
}

func (p *URLPayload) Kind() ResponseKind { return ResponseURL }

func (p *URLPayload) Validate() error {
	if p.URL == "" {
		return errors.New("url is required")
	}
	return nil
}

type DocumentPayload struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	Embed bool   `json:"embed"`
}

func (p *DocumentPayload) Kind() ResponseKind { return ResponseDocument }

func (p *DocumentPayload) Validate() error {
	if p.URL == "" {
		return errors.New("document url is required")
	}
	return nil
}

type EmailPayload struct {
	Subject   string `json:"subject"`
	Recipient string `json:"recipient,omitempty"`
	Content   string `json:"content,omitempty"`
}

func (p *EmailPayload) Kind() ResponseKind { return ResponseEmail }

func (p *EmailPayload) Validate() error {
	if p.Subject == "" {
		return errors.New("email subject is required")
	}
	return nil
}

type QuotePayload struct {
	Content string `json:"content"`
	// UseCSV is carried through storage and export untouched; the renderer
	// performs no calculation for it.
	UseCSV bool `json:"useCSV"`
}

func (p *QuotePayload) Kind() ResponseKind { return ResponseQuote }

func (p *QuotePayload) Validate() error {
	if p.Content == "" {
		return errors.New("quote content is required")
	}
	return nil
}

type CSVPayload struct {
	File          string `json:"file"`
	DisplayFormat string `json:"displayFormat,omitempty"`
	FilterColumn  string `json:"filterColumn,omitempty"`
}

func (p *CSVPayload) Kind() ResponseKind { return ResponseCSV }

func (p *CSVPayload) Validate() error {
	if p.File == "" {
		return errors.New("csv file is required")
	}
	return nil
}

type HTMLPayload struct {
	HTMLCode  string `json:"htmlCode"`
	CustomCSS string `json:"customCSS,omitempty"`
}

func (p *HTMLPayload) Kind() ResponseKind { return ResponseHTML }

func (p *HTMLPayload) Validate() error {
	if p.HTMLCode == "" {
		return errors.New("html code is required")
	}
	return nil
}

type JavaScriptPayload struct {
	JSCode        string `json:"jsCode"`
	JSHTMLCode    string `json:"jsHtmlCode,omitempty"`
	TargetElement string `json:"targetElement,omitempty"`
	JSFunction    string `json:"jsFunction,omitempty"`
}

func (p *JavaScriptPayload) Kind() ResponseKind { return ResponseJavaScript }

func (p *JavaScriptPayload) Validate() error {
	if p.JSCode == "" {
		return errors.New("javascript code is required")
	}
	return nil
}

type TemplatePayload struct {
	TemplateType  string `json:"templateType"`
	PrimaryColor  string `json:"primaryColor,omitempty"`
	TextStyle     string `json:"textStyle,omitempty"`
	LayoutStyle   string `json:"layoutStyle,omitempty"`
	ProjectName   string `json:"projectName,omitempty"`
	GeneratedHTML string `json:"generatedHTML,omitempty"`
	GeneratedCSS  string `json:"generatedCSS,omitempty"`
}

func (p *TemplatePayload) Kind() ResponseKind { return ResponseTemplate }

func (p *TemplatePayload) Validate() error {
	if p.TemplateType == "" {
		return errors.New("template type is required")
	}
	return nil
}

// rawPayload preserves payloads whose kind this build does not know about,
// so an imported trigger with a foreign response type survives a round trip
// and falls through to the renderer's placeholder branch.
type rawPayload struct {
	kind ResponseKind
	data json.RawMessage
}

func (p *rawPayload) Kind() ResponseKind { return p.kind }

func (p *rawPayload) Validate() error {
	return fmt.Errorf("unsupported response type %q", p.kind)
}

func (p *rawPayload) MarshalJSON() ([]byte, error) {
	if len(p.data) == 0 {
		return []byte("null"), nil
	}
	return p.data, nil
}

// DecodePayload turns a raw responseData document into the concrete payload
// for the given kind. Unknown kinds decode into an opaque payload that fails
// Validate but still renders as a placeholder.
func DecodePayload(kind ResponseKind, data json.RawMessage) (ResponsePayload, error) {
	var payload ResponsePayload

	switch kind {
	case ResponseText:
		payload = &TextPayload{}
	case ResponseURL:
		payload = &URLPayload{}
	case ResponseDocument:
		payload = &DocumentPayload{}
	case ResponseEmail:
		payload = &EmailPayload{}
	case ResponseQuote:
		payload = &QuotePayload{}
	case ResponseCSV:
		payload = &CSVPayload{}
	case ResponseHTML:
		payload = &HTMLPayload{}
	case ResponseJavaScript:
		payload = &JavaScriptPayload{}
	case ResponseTemplate:
		payload = &TemplatePayload{}
	default:
		return &rawPayload{kind: kind, data: append(json.RawMessage(nil), data...)}, nil
	}

	if len(data) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(data, payload); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", kind, err)
	}

	return payload, nil
}
