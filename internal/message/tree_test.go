package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textLeaf(mimeType, contentType, body string) *Part {
	var h Headers
	h.Add(HeaderContentType, contentType)
	return &Part{MimeType: mimeType, Headers: h, Body: []byte(body)}
}

func mediaLeaf(mimeType, contentID string) *Part {
	var h Headers
	h.Add(HeaderContentType, mimeType)
	if contentID != "" {
		h.Add(HeaderContentID, contentID)
	}
	return &Part{MimeType: mimeType, Headers: h, Body: []byte{0x47, 0x49, 0x46}}
}

func container(mimeType string, children ...*Part) *Part {
	var h Headers
	h.Add(HeaderContentType, mimeType)
	return &Part{MimeType: mimeType, Headers: h, Children: children}
}

func TestFindPartByContentID(t *testing.T) {
	const cid1 = "cid.1@example.com"
	const cid2 = "cid.2@example.com"
	cid1Part := mediaLeaf("image/gif", cid1)
	// angle-bracket wrapping in the header must not matter
	cid2Part := mediaLeaf("image/gif", "<"+cid2+">")

	simple := container("multipart/related",
		mediaLeaf("text/html", ""),
		cid1Part,
	)
	found, err := FindPartByContentID(simple, cid1)
	require.NoError(t, err)
	assert.Same(t, cid1Part, found)

	nested := container("multipart/mixed",
		mediaLeaf("image/tiff", "cid.4@example.com"),
		container("multipart/related",
			container("multipart/alternative",
				mediaLeaf("text/plain", ""),
				mediaLeaf("text/html", ""),
			),
			cid1Part,
		),
		mediaLeaf("image/gif", "cid.3@example.com"),
		cid2Part,
	)

	found, err = FindPartByContentID(nested, cid1)
	require.NoError(t, err)
	assert.Same(t, cid1Part, found)

	found, err = FindPartByContentID(nested, cid2)
	require.NoError(t, err)
	assert.Same(t, cid2Part, found)

	found, err = FindPartByContentID(nested, "missing@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = FindPartByContentID(nested, "")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindFirstPartByMimeType(t *testing.T) {
	plain := textLeaf("text/plain", "text/plain", "plain")
	html := textLeaf("text/html", "text/html", "<p>html</p>")
	tiff := mediaLeaf("image/tiff", "")
	root := container("multipart/mixed",
		tiff,
		container("multipart/alternative", plain, html),
	)

	found, err := FindFirstPartByMimeType(root, "text/html")
	require.NoError(t, err)
	assert.Same(t, html, found)

	// first match in document order wins
	found, err = FindFirstPartByMimeType(root, "text/*")
	require.NoError(t, err)
	assert.Same(t, plain, found)

	found, err = FindFirstPartByMimeType(root, "image/*")
	require.NoError(t, err)
	assert.Same(t, tiff, found)

	found, err = FindFirstPartByMimeType(root, "application/pdf")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestTextFromPart(t *testing.T) {
	const text = "This is the text of the part"

	p := textLeaf("text/plain", "text/plain", text)
	got, err := TextFromPart(p)
	require.NoError(t, err)
	assert.Equal(t, text, got)

	// mixed case and non-plain subtypes are fine
	p = textLeaf("TEXT/PLAIN", "TEXT/PLAIN", text)
	got, err = TextFromPart(p)
	require.NoError(t, err)
	assert.Equal(t, text, got)

	p = textLeaf("text/other", "text/other", text)
	got, err = TextFromPart(p)
	require.NoError(t, err)
	assert.Equal(t, text, got)

	// non-text parts are refused, not failed
	got, err = TextFromPart(mediaLeaf("image/gif", ""))
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestTextFromPartCharset(t *testing.T) {
	// UTF-8 bytes of "☺"; also valid windows-1252, so only the declared
	// charset disambiguates
	smiley := "This is some happy unicode text \xe2\x98\xba"

	p := textLeaf("text/html", "text/html; charset=utf-8", smiley)
	got, err := TextFromPart(p)
	require.NoError(t, err)
	assert.Equal(t, "This is some happy unicode text ☺", got)

	p = textLeaf("text/html", "text/html; charset=windows-1252", smiley)
	got, err = TextFromPart(p)
	require.NoError(t, err)
	assert.Equal(t, "This is some happy unicode text â˜º", got)

	// extra parameters, quoting and mixed case around the charset
	p = textLeaf("text/html", `text/html; prop1 = "test"; charset = "windows-1252"; prop2 = "test"`, smiley)
	got, err = TextFromPart(p)
	require.NoError(t, err)
	assert.Equal(t, "This is some happy unicode text â˜º", got)

	p = textLeaf("text/html", "TEXT/HtmL ; CHARseT=windows-1252", smiley)
	got, err = TextFromPart(p)
	require.NoError(t, err)
	assert.Equal(t, "This is some happy unicode text â˜º", got)

	// no charset parameter: 7-bit default passes the bytes through
	p = textLeaf("text/plain", "text/plain", "plain ascii")
	got, err = TextFromPart(p)
	require.NoError(t, err)
	assert.Equal(t, "plain ascii", got)
}

func TestCollectParts(t *testing.T) {
	plain := textLeaf("text/plain", "text/plain", "body")
	html := textLeaf("text/html", "text/html", "<p>body</p>")
	inline := mediaLeaf("image/gif", "cid.1@example.com")
	anonymous := mediaLeaf("image/gif", "")

	pdf := mediaLeaf("application/pdf", "")
	pdf.Headers.Add(HeaderContentDisposition, `attachment; filename="doc.pdf"`)

	// an explicit disposition beats an otherwise viewable type
	detached := textLeaf("text/plain", "text/plain", "log")
	detached.Headers.Add(HeaderContentDisposition, `attachment; filename="log.txt"`)

	// a filename alone marks an attachment even with an inline type
	named := mediaLeaf("image/gif", "cid.9@example.com")
	named.Headers.Add(HeaderContentDisposition, `inline; filename="photo.gif"`)

	root := container("multipart/mixed",
		container("multipart/alternative", plain, html),
		container("multipart/related", inline, anonymous),
		pdf,
		detached,
		named,
	)

	viewables, attachments, err := CollectParts(root)
	require.NoError(t, err)

	assert.Equal(t, []*Part{plain, html, inline}, viewables)
	assert.Equal(t, []*Part{anonymous, pdf, detached, named}, attachments)
}

func TestTraversalRejectsMalformedPart(t *testing.T) {
	bad := &Part{
		MimeType: "text/plain",
		Body:     []byte("body"),
		Children: []*Part{textLeaf("text/plain", "text/plain", "x")},
	}
	root := container("multipart/mixed", bad)

	_, err := FindPartByContentID(root, "cid@example.com")
	var malformed *MalformedMessageError
	require.ErrorAs(t, err, &malformed)

	_, _, err = CollectParts(root)
	require.ErrorAs(t, err, &malformed)

	_, err = TextFromPart(bad)
	require.ErrorAs(t, err, &malformed)

	_, err = FindPartByContentID(nil, "cid@example.com")
	require.ErrorAs(t, err, &malformed)
}
