package server

import (
	"bufio"
	"os"
	"strings"
)

// ReadMessages reads all messages from an mbox file and returns them as raw
// strings, envelope line included. It opens the file in read-only mode.
func ReadMessages(mboxPath string) ([]string, error) {
	f, err := os.Open(mboxPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var messages []string
	scanner := bufio.NewScanner(f)
	var currentMessage strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "From ") && currentMessage.Len() > 0 {
			messages = append(messages, currentMessage.String())
			currentMessage.Reset()
		}
		currentMessage.WriteString(line)
		currentMessage.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if currentMessage.Len() > 0 {
		messages = append(messages, currentMessage.String())
	}
	return messages, nil
}

func SplitAtFirstNewline(s string) (string, string) {
	if i := strings.Index(s, "\n"); i != -1 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

func SplitHeadersFromBody(s string) (string, string) {
	if i := strings.Index(s, "\n\n"); i != -1 {
		return s[:i+1], s[i+2:]
	}
	return s, ""
}
