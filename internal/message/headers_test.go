package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const rawHeaders = "From: alice@example.com\n" +
	"Subject: a folded\n" +
	"\t subject value\n" +
	"Received: first hop\n" +
	"Received: second hop\n" +
	"garbage line without colon\n" +
	"To: bob@example.com\n"

func TestParseHeaders(t *testing.T) {
	h := ParseHeaders(rawHeaders)

	assert.Equal(t, 4+1, h.Len())
	assert.Equal(t, "alice@example.com", h.Get("From"))
	assert.Equal(t, "bob@example.com", h.Get("to"))

	// continuation lines join with a single space
	assert.Equal(t, "a folded subject value", h.Get("SUBJECT"))

	// duplicates keep insertion order, lookup resolves to the first
	assert.Equal(t, "first hop", h.Get("Received"))

	assert.False(t, h.Has("Cc"))
	assert.Equal(t, "", h.Get("Cc"))
}

func TestHeadersAddAndField(t *testing.T) {
	var h Headers
	h.Add("Content-Type", "text/plain")
	h.AddLines("Subject", []string{"one", "two"})

	assert.True(t, h.Has("content-type"))
	name, value := h.Field(1)
	assert.Equal(t, "Subject", name)
	assert.Equal(t, "one two", value)
}

func TestHeadersString(t *testing.T) {
	var h Headers
	h.Add("From", "alice@example.com")
	h.AddLines("Subject", []string{"first line", "second line"})

	want := "From: alice@example.com\n" +
		"Subject: first line\n" +
		"\tsecond line\n"
	assert.Equal(t, want, h.String())

	// rendering parses back to the same fields
	again := ParseHeaders(h.String())
	assert.Equal(t, h.Get("Subject"), again.Get("Subject"))
}
