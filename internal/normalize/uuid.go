package normalize

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"net/mail"
	"time"

	"github.com/emurenMRz/mimeview/internal/message"
)

// newMessageID produces the local part of a generated Message-ID: a UUIDv7
// anchored to the message's Date when parseable, a random UUIDv4 otherwise.
func newMessageID(h message.Headers) string {
	if date := h.Get("Date"); date != "" {
		if ts, err := mail.ParseDate(date); err == nil && !ts.IsZero() {
			return uuidV7(ts)
		}
	}
	return uuidV4()
}

// uuidV4 generates a random UUID version 4 (RFC 4122).
func uuidV4() string {
	uuid := make([]byte, 16)
	_, _ = rand.Read(uuid)
	uuid[6] = (uuid[6] & 0x0f) | 0x40 // Version 4
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // Variant RFC 4122
	return formatUUID(uuid)
}

// uuidV7 generates a UUID version 7 (RFC 9562) from a timestamp.
func uuidV7(timestamp time.Time) string {
	uuid := make([]byte, 16)
	_, _ = rand.Read(uuid)

	// 48 bits of big-endian millisecond timestamp in bytes 0-5
	ms := timestamp.UnixMilli()
	binary.BigEndian.PutUint64(uuid[0:8], uint64(ms)<<16)

	uuid[6] = (uuid[6] & 0x0f) | 0x70 // Version 7
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // Variant RFC 4122

	return formatUUID(uuid)
}

func formatUUID(uuid []byte) string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", uuid[0:4], uuid[4:6], uuid[6:8], uuid[8:10], uuid[10:])
}
