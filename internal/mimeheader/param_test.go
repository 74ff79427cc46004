package mimeheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	headerNoParameter     = "header"
	headerMultiParameter  = "header; Param1Name=Param1Value; Param2Name=Param2Value"
	headerQuotedParameter = `header; Param1Name="Param1Value"; Param2Name="Param2Value"`
	// a malformed header seen on production servers
	headerMalformedParameter = "header; Param1Name=Param1Value; filename"
)

func TestHeaderParameter(t *testing.T) {
	// absent header
	assert.Equal(t, "", HeaderParameter("", "name"))

	// absent name returns the bare value before the first ';', not the
	// first parameter
	assert.Equal(t, "header", HeaderParameter(headerMultiParameter, ""))
	assert.Equal(t, headerNoParameter, HeaderParameter(headerNoParameter, ""))

	assert.Equal(t, "Param1Value", HeaderParameter(headerMultiParameter, "Param1Name"))
	assert.Equal(t, "Param2Value", HeaderParameter(headerMultiParameter, "Param2Name"))
	assert.Equal(t, "", HeaderParameter(headerMultiParameter, "Param3Name"))

	// case insensitivity
	assert.Equal(t, "Param2Value", HeaderParameter(headerMultiParameter, "param2name"))
	assert.Equal(t, "Param2Value", HeaderParameter(headerMultiParameter, "PARAM2NAME"))

	// quoting
	assert.Equal(t, "Param1Value", HeaderParameter(headerQuotedParameter, "Param1Name"))
	assert.Equal(t, "Param2Value", HeaderParameter(headerQuotedParameter, "Param2Name"))

	// a bare token never matches and never fails
	assert.Equal(t, "", HeaderParameter(headerMalformedParameter, "filename"))
}

func TestHeaderParameterQuotedSeparator(t *testing.T) {
	h := `multipart/mixed; boundary="a;b;c"; charset=utf-8`
	assert.Equal(t, "a;b;c", HeaderParameter(h, "boundary"))
	assert.Equal(t, "utf-8", HeaderParameter(h, "charset"))
	assert.Equal(t, "multipart/mixed", HeaderParameter(h, ""))
}

func TestHeaderParameterSpacedAssignments(t *testing.T) {
	h := `text/html; prop1 = "test"; charset = "windows-1252"; prop2 = "test"`
	assert.Equal(t, "windows-1252", HeaderParameter(h, "CHARseT"))
}

func TestHeaderParameterTrailingCommentLimitation(t *testing.T) {
	// the parenthetical comment is not stripped; downstream charset lookup
	// falls back rather than failing
	h := "text/html; charset=utf-8 (Plain text)"
	assert.Equal(t, "utf-8 (Plain text)", HeaderParameter(h, "charset"))
}
