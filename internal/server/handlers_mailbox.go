package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/mail"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/emersion/go-imap/utf7"
	"github.com/emersion/go-mbox"

	"github.com/emurenMRz/mimeview/internal/message"
	"github.com/emurenMRz/mimeview/internal/mimeheader"
)

func mailboxesHandler(w http.ResponseWriter, _ *http.Request) {
	files, err := os.ReadDir(basePath)
	if err != nil {
		http.Error(w, "Failed to read directory", http.StatusInternalServerError)
		return
	}

	var mailboxes []string
	for _, file := range files {
		if !file.IsDir() {
			// Files on disk are IMAP-UTF7 encoded; decode to UTF-8 for API response
			decodedName, err := utf7.Encoding.NewDecoder().String(file.Name())
			if err != nil {
				log.Printf("Failed to decode mailbox filename %s: %v", file.Name(), err)
				continue
			}
			mailboxes = append(mailboxes, decodedName)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mailboxes)
}

// mboxPathFor maps a UTF-8 mailbox name from the API to the IMAP-UTF7
// encoded filename on disk.
func mboxPathFor(mailboxName string) (string, bool) {
	encoded, err := utf7.Encoding.NewEncoder().String(mailboxName)
	if err != nil {
		return "", false
	}
	return filepath.Join(basePath, encoded), true
}

func listEmailsHandler(w http.ResponseWriter, r *http.Request, mailboxName string) {
	mboxPath, ok := mboxPathFor(mailboxName)
	if !ok {
		http.Error(w, "Invalid mailbox name", http.StatusBadRequest)
		return
	}
	f, err := os.Open(mboxPath)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	var emails []Email
	reader := mbox.NewReader(f)
	i := 0
	for {
		msgReader, err := reader.NextMessage()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Error reading message in %s: %v", mailboxName, err)
			continue
		}

		msg, err := mail.ReadMessage(msgReader)
		if err != nil {
			log.Printf("Failed to parse message headers in %s: %v", mailboxName, err)
			continue
		}

		dateStr := msg.Header.Get("Date")
		emails = append(emails, Email{
			ID:        i,
			From:      decodeAddressList(msg.Header.Get("From")),
			Date:      dateStr,
			Subject:   mimeheader.UnfoldAndDecode(msg.Header.Get("Subject")),
			Timestamp: parseDate(dateStr),
		})
		i++
	}

	// sort by Timestamp descending (newest first). Zero timestamps go last.
	sort.SliceStable(emails, func(a, b int) bool {
		ta := emails[a].Timestamp
		tb := emails[b].Timestamp
		if ta.Equal(tb) {
			return emails[a].ID < emails[b].ID
		}
		if ta.IsZero() {
			return false
		}
		if tb.IsZero() {
			return true
		}
		return ta.After(tb)
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(emails)
}

// messageTree reads message emailId from the mailbox and builds its part
// tree.
func messageTree(w http.ResponseWriter, r *http.Request, mailboxName, emailIdStr string) (*message.Part, bool) {
	mboxPath, ok := mboxPathFor(mailboxName)
	if !ok {
		http.Error(w, "Invalid mailbox name", http.StatusBadRequest)
		return nil, false
	}
	emailId, err := strconv.Atoi(emailIdStr)
	if err != nil || emailId < 0 {
		http.Error(w, "Invalid email ID", http.StatusBadRequest)
		return nil, false
	}

	f, err := os.Open(mboxPath)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}
	defer f.Close()

	reader := mbox.NewReader(f)
	for i := 0; ; i++ {
		msgReader, err := reader.NextMessage()
		if err == io.EOF {
			http.Error(w, "Invalid email ID", http.StatusBadRequest)
			return nil, false
		}
		if err != nil {
			log.Printf("Error reading message in %s: %v", mailboxName, err)
			http.Error(w, "Error reading mbox", http.StatusInternalServerError)
			return nil, false
		}
		if i < emailId {
			continue
		}

		msg, err := mail.ReadMessage(msgReader)
		if err != nil {
			log.Printf("Failed to parse message %d in %s: %v", emailId, mailboxName, err)
			http.Error(w, "Error parsing message", http.StatusInternalServerError)
			return nil, false
		}
		root, err := BuildMessage(msg)
		if err != nil {
			log.Printf("Failed to build part tree for message %d in %s: %v", emailId, mailboxName, err)
			http.Error(w, "Error parsing message", http.StatusInternalServerError)
			return nil, false
		}
		return root, true
	}
}

func emailContentHandler(w http.ResponseWriter, r *http.Request, mailboxName, emailIdStr string) {
	root, ok := messageTree(w, r, mailboxName, emailIdStr)
	if !ok {
		return
	}

	content, err := renderContent(root)
	if err != nil {
		log.Printf("Failed to render message %s in %s: %v", emailIdStr, mailboxName, err)
		http.Error(w, "Malformed message", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(content)
}

// emailPartHandler serves one body part addressed by Content-ID, e.g. an
// inline image referenced from an HTML body.
func emailPartHandler(w http.ResponseWriter, r *http.Request, mailboxName, emailIdStr, contentId string) {
	root, ok := messageTree(w, r, mailboxName, emailIdStr)
	if !ok {
		return
	}

	part, err := message.FindPartByContentID(root, contentId)
	if err != nil {
		log.Printf("Failed to search message %s in %s: %v", emailIdStr, mailboxName, err)
		http.Error(w, "Malformed message", http.StatusInternalServerError)
		return
	}
	if part == nil || part.IsContainer() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", part.MimeType)
	w.Write(part.Body)
}
