package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

type message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

func main() {
	http.HandleFunc("/api/messages", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var msg message
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			log.Printf("[Mail Sink] Bad payload: %v", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if _, err := w.Write([]byte(`{"status":"queued"}`)); err != nil {
			log.Printf("[Mail Sink] Write error: %v", err)
		}

		log.Printf("[Mail Sink] Accepted %q from %s to %v\n%s", msg.Subject, msg.From, msg.To, msg.Body)
	})

	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
			log.Printf("[Mail Sink] Health write error: %v", err)
		}
	})

	log.Println("Mock Mail Sink running on :8025")
	server := &http.Server{
		Addr:         ":8025",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
