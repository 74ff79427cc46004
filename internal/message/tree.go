package message

import (
	"strings"

	"github.com/emurenMRz/mimeview/internal/mimeheader"
)

// Header names the tree algorithms consume.
const (
	HeaderContentType        = "Content-Type"
	HeaderContentID          = "Content-ID"
	HeaderContentDisposition = "Content-Disposition"
)

// ContentID returns p's Content-ID header value with optional angle
// brackets stripped, or "" when absent.
func (p *Part) ContentID() string {
	id := strings.TrimSpace(p.Headers.Get(HeaderContentID))
	if strings.HasPrefix(id, "<") && strings.HasSuffix(id, ">") {
		id = id[1 : len(id)-1]
	}
	return id
}

// FindPartByContentID returns the first part in document order whose
// Content-ID equals id, angle brackets ignored, or nil when nothing
// matches.
func FindPartByContentID(root *Part, id string) (*Part, error) {
	if id == "" {
		return nil, nil
	}
	return findPart(root, func(p *Part) bool { return p.ContentID() == id })
}

// FindFirstPartByMimeType returns the first part in document order whose
// MIME type matches pattern, or nil when nothing matches.
func FindFirstPartByMimeType(root *Part, pattern string) (*Part, error) {
	return findPart(root, func(p *Part) bool {
		return mimeheader.MimeTypeMatches(p.MimeType, pattern)
	})
}

// findPart is a pre-order depth-first search stopping at the first hit.
func findPart(p *Part, match func(*Part) bool) (*Part, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	if match(p) {
		return p, nil
	}
	for _, child := range p.Children {
		found, err := findPart(child, match)
		if err != nil || found != nil {
			return found, err
		}
	}
	return nil, nil
}

// TextFromPart decodes a text leaf's body using the charset parameter of
// its Content-Type header, defaulting to 7-bit ASCII. Parts that are not
// text/* yield "" rather than an error.
func TextFromPart(p *Part) (string, error) {
	if err := p.check(); err != nil {
		return "", err
	}
	if p.IsContainer() || !mimeheader.MimeTypeMatches(p.MimeType, "text/*") {
		return "", nil
	}
	charset := mimeheader.HeaderParameter(p.Headers.Get(HeaderContentType), "charset")
	if charset == "" {
		charset = mimeheader.DefaultCharset
	}
	return mimeheader.DecodeBytes(p.Body, charset), nil
}

// viewableTypes are the leaf types rendered inline when no attachment
// disposition says otherwise.
var viewableTypes = []string{"text/*"}

// CollectParts partitions the leaves of the tree into viewable parts and
// attachments, both in document order. A leaf with an explicit attachment
// disposition (type "attachment" or a filename parameter) is an attachment;
// otherwise text leaves and inline media referenced by Content-ID are
// viewable. Containers are traversed but never classified.
func CollectParts(root *Part) (viewables, attachments []*Part, err error) {
	err = collect(root, &viewables, &attachments)
	return viewables, attachments, err
}

func collect(p *Part, viewables, attachments *[]*Part) error {
	if err := p.check(); err != nil {
		return err
	}
	if p.IsContainer() {
		for _, child := range p.Children {
			if err := collect(child, viewables, attachments); err != nil {
				return err
			}
		}
		return nil
	}
	disposition := p.Headers.Get(HeaderContentDisposition)
	attached := strings.EqualFold(mimeheader.HeaderParameter(disposition, ""), "attachment") ||
		mimeheader.HeaderParameter(disposition, "filename") != ""
	inlineMedia := p.ContentID() != "" && mimeheader.MimeTypeMatches(p.MimeType, "image/*")
	if !attached && (mimeheader.MimeTypeMatchesAny(p.MimeType, viewableTypes) || inlineMedia) {
		*viewables = append(*viewables, p)
	} else {
		*attachments = append(*attachments, p)
	}
	return nil
}
