// Package normalize validates and rewrites message header blocks: raw 8-bit
// header values become RFC 2047 encoded words, overlong values are refolded,
// and a Message-ID is generated when missing.
package normalize

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/emurenMRz/mimeview/internal/message"
	"github.com/emurenMRz/mimeview/internal/mimeheader"
)

const (
	StatusMissing = "missing"
	StatusInvalid = "invalid"
	StatusEncoded = "encoded"
	StatusDeleted = "deleted"
)

// Result describes one finding for one message's headers.
type Result struct {
	MsgIndex int    `json:"msgIndex"`
	Field    string `json:"field"`
	Status   string `json:"status"`
	Detail   string `json:"detail,omitempty"`
}

var (
	requiredHeaders = []string{"From", "Date", "Message-ID"}

	messageIDRegex = regexp.MustCompile(`^<[^<>@]+@[^<>@]+>$`)
)

// Validate checks a raw header block for missing required fields, broken
// From/Date/Message-ID values and raw 8-bit text that should have been sent
// as encoded words.
func Validate(raw string, msgIndex int) []Result {
	h := message.ParseHeaders(raw)
	var results []Result

	for _, name := range requiredHeaders {
		if !h.Has(name) {
			results = append(results, Result{MsgIndex: msgIndex, Field: name, Status: StatusMissing})
		}
	}

	if from := h.Get("From"); from != "" {
		if _, err := mail.ParseAddressList(mimeheader.UnfoldAndDecode(from)); err != nil {
			results = append(results, Result{
				MsgIndex: msgIndex,
				Field:    "From",
				Status:   StatusInvalid,
				Detail:   "invalid address list",
			})
		}
	}

	if date := h.Get("Date"); date != "" {
		if _, err := mail.ParseDate(date); err != nil {
			results = append(results, Result{
				MsgIndex: msgIndex,
				Field:    "Date",
				Status:   StatusInvalid,
				Detail:   "invalid date format",
			})
		}
	}

	if msgID := h.Get("Message-ID"); msgID != "" {
		trimmed := strings.Trim(msgID, "<>")
		if !messageIDRegex.MatchString("<" + trimmed + ">") {
			results = append(results, Result{
				MsgIndex: msgIndex,
				Field:    "Message-ID",
				Status:   StatusInvalid,
				Detail:   "invalid message id format",
			})
		}
	}

	for i := 0; i < h.Len(); i++ {
		name, value := h.Field(i)
		if !mimeheader.IsASCII(value) {
			results = append(results, Result{
				MsgIndex: msgIndex,
				Field:    name,
				Status:   StatusInvalid,
				Detail:   "raw 8-bit value, needs RFC 2047 encoding",
			})
		}
	}

	if h.Get("Status") == "D" {
		results = append(results, Result{MsgIndex: msgIndex, Field: "Status", Status: StatusDeleted})
	}

	return results
}

// Normalize rewrites a raw header block to wire-clean form and reports what
// changed. Every value is unfolded, decoded and re-encoded against the line
// budget; a Message-ID derived from the Date field is added when missing.
func Normalize(raw string, msgIndex int) (string, []Result) {
	h := message.ParseHeaders(raw)
	var out message.Headers
	var results []Result

	for i := 0; i < h.Len(); i++ {
		name, value := h.Field(i)
		logical := mimeheader.UnfoldAndDecode(value)
		encoded := mimeheader.FoldAndEncode(logical, len(name)+2)
		if encoded == logical {
			// Pure ASCII came back untouched and still needs the line
			// budget enforced. Encoded-word output is already folded and
			// must not go through Fold again: it would break at the space
			// of an existing CRLF-space separator and leave a bare CRLF
			// inside the value.
			encoded = mimeheader.Fold(encoded, len(name)+2)
		}
		if !mimeheader.IsASCII(value) {
			results = append(results, Result{MsgIndex: msgIndex, Field: name, Status: StatusEncoded})
		}
		out.AddLines(name, strings.Split(encoded, "\r\n "))
	}

	if !out.Has("Message-ID") {
		results = append(results, Result{MsgIndex: msgIndex, Field: "Message-ID", Status: StatusMissing})
		out.Add("Message-ID", fmt.Sprintf("<%s@mimefix>", newMessageID(h)))
	}

	return out.String(), results
}
