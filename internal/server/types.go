package server

import "time"

type Email struct {
	ID      int    `json:"id"`
	From    string `json:"from"`
	Date    string `json:"date"`
	Subject string `json:"subject"`
	// Timestamp is parsed Date used for sorting. Not exported to JSON.
	Timestamp time.Time `json:"-"`
}

type EmailContent struct {
	Body        string   `json:"body"`
	BodyType    string   `json:"bodyType"`
	Attachments []string `json:"attachments"`
	// InlineParts lists the Content-IDs of viewable non-text parts, to be
	// fetched through the parts endpoint.
	InlineParts []string `json:"inlineParts"`
}
