package main

import (
	"flag"
	"log"

	"github.com/emurenMRz/mimeview/internal/server"
)

func main() {
	var (
		path = flag.String("path", ".", "path to mbox files")
		addr = flag.String("addr", ":8080", "listen address")
	)
	flag.Parse()

	server.RegisterHandlers(*path)

	log.Println("Listening on " + *addr + "...")
	if err := server.ListenAndServe(*addr); err != nil {
		log.Fatal(err)
	}
}
