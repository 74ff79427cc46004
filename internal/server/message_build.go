package server

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"net/textproto"
	"strings"
	"time"

	"github.com/emurenMRz/mimeview/internal/message"
	"github.com/emurenMRz/mimeview/internal/mimeheader"
)

// BuildMessage converts a parsed RFC 5322 message into a part tree. This is
// the framing side of the house: multipart boundaries and transfer encodings
// are resolved here so the tree algorithms can work on plain bytes.
func BuildMessage(msg *mail.Message) (*message.Part, error) {
	return buildPart(headersFromMail(msg.Header), msg.Body)
}

func buildPart(headers message.Headers, body io.Reader) (*message.Part, error) {
	ctype := headers.Get(message.HeaderContentType)
	mimeType := strings.ToLower(mimeheader.HeaderParameter(ctype, ""))
	if mimeType == "" {
		mimeType = "text/plain"
	}

	if strings.HasPrefix(mimeType, "multipart/") {
		boundary := mimeheader.HeaderParameter(ctype, "boundary")
		if boundary == "" {
			return nil, fmt.Errorf("multipart %s without boundary", mimeType)
		}
		part := &message.Part{
			MimeType: mimeType,
			Headers:  headers,
			Children: []*message.Part{},
		}
		mr := multipart.NewReader(body, boundary)
		for {
			p, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			child, err := buildPart(headersFromMIME(p.Header), p)
			if err != nil {
				return nil, err
			}
			part.Children = append(part.Children, child)
		}
		return part, nil
	}

	reader := body
	switch strings.ToLower(strings.TrimSpace(headers.Get("Content-Transfer-Encoding"))) {
	case "base64":
		reader = base64.NewDecoder(base64.StdEncoding, body)
	case "quoted-printable":
		reader = quotedprintable.NewReader(body)
	default:
		// 7bit, 8bit, binary -> no wrapper
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = []byte{}
	}
	return &message.Part{MimeType: mimeType, Headers: headers, Body: data}, nil
}

func headersFromMail(mh mail.Header) message.Headers {
	var h message.Headers
	for name, values := range mh {
		for _, v := range values {
			h.Add(name, v)
		}
	}
	return h
}

func headersFromMIME(mh textproto.MIMEHeader) message.Headers {
	var h message.Headers
	for name, values := range mh {
		for _, v := range values {
			h.Add(name, v)
		}
	}
	return h
}

// renderContent flattens a part tree into the API shape: the first viewable
// text part becomes the body, inline media are listed by Content-ID and the
// rest by filename.
func renderContent(root *message.Part) (EmailContent, error) {
	content := EmailContent{Attachments: []string{}, InlineParts: []string{}}

	viewables, attachments, err := message.CollectParts(root)
	if err != nil {
		return content, err
	}

	for _, v := range viewables {
		text, err := message.TextFromPart(v)
		if err != nil {
			return content, err
		}
		if text != "" && content.Body == "" {
			content.Body = text
			content.BodyType = v.MimeType
			continue
		}
		if cid := v.ContentID(); cid != "" {
			content.InlineParts = append(content.InlineParts, cid)
		}
	}

	for _, att := range attachments {
		name := mimeheader.HeaderParameter(att.Headers.Get(message.HeaderContentDisposition), "filename")
		if name == "" {
			name = mimeheader.HeaderParameter(att.Headers.Get(message.HeaderContentType), "name")
		}
		if name == "" {
			name = att.MimeType
		}
		content.Attachments = append(content.Attachments, name)
	}

	return content, nil
}

// decodeAddressList renders an address header for display, resolving
// encoded words in display names.
func decodeAddressList(header string) string {
	if header == "" {
		return ""
	}
	addrs, err := mail.ParseAddressList(header)
	if err != nil {
		// Fallback: decode the whole header as-is
		return mimeheader.UnfoldAndDecode(header)
	}
	var parts []string
	for _, a := range addrs {
		if a.Name != "" {
			parts = append(parts, mimeheader.UnfoldAndDecode(a.Name)+" <"+a.Address+">")
		} else {
			parts = append(parts, a.Address)
		}
	}
	return strings.Join(parts, ", ")
}

// parseDate tries common email Date header formats and returns zero time
// when none parse.
func parseDate(dateStr string) time.Time {
	if dateStr == "" {
		return time.Time{}
	}
	if t, err := mail.ParseDate(dateStr); err == nil {
		return t
	}
	layouts := []string{
		time.RFC1123Z,
		time.RFC1123,
		time.RFC822Z,
		time.RFC822,
		time.RFC850,
		time.RFC3339,
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, dateStr); err == nil {
			return t
		}
	}
	return time.Time{}
}
