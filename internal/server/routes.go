package server

import (
	"log"
	"net/http"
	"strings"
)

func handleMailboxRoutes(w http.ResponseWriter, r *http.Request) {
	log.Println(r.Method + " " + r.URL.Path)

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/mailboxes/"), "/")
	segmentCount := len(parts)

	if segmentCount == 1 {
		mailboxesHandler(w, r)
		return
	}

	if parts[1] == "emails" {
		mboxName := parts[0]
		switch segmentCount {
		case 2:
			listEmailsHandler(w, r, mboxName)
			return
		case 3:
			emailContentHandler(w, r, mboxName, parts[2])
			return
		case 5:
			if parts[3] == "parts" {
				emailPartHandler(w, r, mboxName, parts[2], parts[4])
				return
			}
		}
	}

	http.NotFound(w, r)
}
