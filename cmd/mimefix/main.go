package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/emurenMRz/mimeview/internal/message"
	"github.com/emurenMRz/mimeview/internal/mimeheader"
	"github.com/emurenMRz/mimeview/internal/normalize"
	"github.com/emurenMRz/mimeview/internal/server"
)

func main() {
	var (
		mode      = flag.String("mode", "validate", "Operation mode: validate, fix, show")
		inplace   = flag.Bool("inplace", false, "Modify input file in-place (for fix mode)")
		outPath   = flag.String("out", "", "Output file path (for fix mode)")
		dryRun    = flag.Bool("dry-run", false, "Simulate fix operation without writing (for fix mode)")
		quiet     = flag.Bool("quiet", false, "Suppress non-error output (for fix mode)")
		msgIndex  = flag.Int("msg", -1, "Message index (for show mode)")
		inputPath = flag.String("path", "", "Input mbox file path (required)")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("Error: -path is required")
	}

	messages, err := server.ReadMessages(*inputPath)
	if err != nil {
		log.Fatal("Failed to read mbox file: ", err)
	}

	switch *mode {
	case "validate":
		validateMessages(messages)
	case "fix":
		fixMessages(messages, *inputPath, *inplace, *outPath, *dryRun, *quiet)
	case "show":
		showMessage(messages, *msgIndex)
	default:
		log.Fatal("Error: Unknown mode. Use validate, fix, or show")
	}
}

func validateMessages(messages []string) {
	var allResults []normalize.Result

	for i, msg := range messages {
		_, rest := server.SplitAtFirstNewline(msg)
		headers, _ := server.SplitHeadersFromBody(rest)
		allResults = append(allResults, normalize.Validate(headers, i)...)
	}

	outputText(allResults)
}

func fixMessages(messages []string, inputPath string, inplace bool, outPath string, dryRun, quiet bool) {
	var normalizedMessages []string
	var allResults []normalize.Result

	for i, msg := range messages {
		envelopeLine, rest := server.SplitAtFirstNewline(msg)
		headers, body := server.SplitHeadersFromBody(rest)

		normalized, results := normalize.Normalize(headers, i)
		normalizedMessages = append(normalizedMessages, envelopeLine+"\n"+normalized+"\n"+body)
		allResults = append(allResults, results...)
	}

	if !quiet {
		outputText(allResults)
	}

	if dryRun {
		return
	}
	if inplace {
		writeMessagesToFile(normalizedMessages, inputPath)
	} else if outPath != "" {
		writeMessagesToFile(normalizedMessages, outPath)
	} else {
		for _, msg := range normalizedMessages {
			fmt.Println(msg)
		}
	}
}

func showMessage(messages []string, msgIndex int) {
	if msgIndex < 0 || msgIndex >= len(messages) {
		log.Fatal("Error: Invalid message index")
	}

	_, rest := server.SplitAtFirstNewline(messages[msgIndex])
	headers, _ := server.SplitHeadersFromBody(rest)

	fmt.Printf("Message %d:\n", msgIndex)
	h := message.ParseHeaders(headers)
	for i := 0; i < h.Len(); i++ {
		name, value := h.Field(i)
		fmt.Printf("%s: %s\n", name, mimeheader.UnfoldAndDecode(value))
	}
}

func writeMessagesToFile(messages []string, path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal("Error creating output file:", err)
	}
	defer file.Close()

	for _, msg := range messages {
		if _, err := file.WriteString(msg); err != nil {
			log.Fatal("Error writing to output file:", err)
		}
	}
}

func outputText(results []normalize.Result) {
	if len(results) == 0 {
		fmt.Println("No problems found.")
		return
	}

	for _, result := range results {
		switch result.Status {
		case normalize.StatusMissing:
			fmt.Printf("Message %d: %s header is missing\n", result.MsgIndex, result.Field)
		case normalize.StatusInvalid:
			fmt.Printf("Message %d: %s header is invalid (%s)\n", result.MsgIndex, result.Field, result.Detail)
		case normalize.StatusEncoded:
			fmt.Printf("Message %d: %s header re-encoded\n", result.MsgIndex, result.Field)
		case normalize.StatusDeleted:
			fmt.Printf("Message %d: Status = D\n", result.MsgIndex)
		}
	}
}
