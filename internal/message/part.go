// Package message models a decoded MIME message as a tree of parts and
// provides the search and classification algorithms a viewer needs. The
// package only reads the trees it is handed; building them from a byte
// stream is the caller's job.
package message

// Part is one node of a message tree: either a leaf carrying body bytes or a
// container carrying ordered children, never both.
type Part struct {
	MimeType string
	Headers  Headers
	Body     []byte  // leaf content, nil for containers
	Children []*Part // multipart children, nil for leaves
}

// IsContainer reports whether p carries children rather than a body.
func (p *Part) IsContainer() bool {
	return p.Children != nil
}

// MalformedMessageError reports a message whose structure violates the
// leaf-or-container invariant and cannot be traversed.
type MalformedMessageError struct {
	Reason string
}

func (e *MalformedMessageError) Error() string {
	return "malformed message: " + e.Reason
}

func (p *Part) check() error {
	if p == nil {
		return &MalformedMessageError{Reason: "nil part"}
	}
	if p.Body != nil && p.Children != nil {
		return &MalformedMessageError{Reason: "part has both body and children"}
	}
	return nil
}
