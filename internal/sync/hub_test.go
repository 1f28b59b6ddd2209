package sync

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"
)

func TestHub_BroadcastJSONToTCPClient(t *testing.T) {
	hub := NewHub()

	client, server := net.Pipe()
	defer client.Close()
	hub.Add(server)

	lines := make(chan string, 1)
	go func() {
		sc := bufio.NewScanner(client)
		if sc.Scan() {
			lines <- sc.Text()
		}
	}()

	hub.BroadcastJSON(DatasetEvent{Type: EventDatasetReload, Rows: 3})

	select {
	case line := <-lines:
		var ev DatasetEvent
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("decode broadcast: %v", err)
		}
		if ev.Type != EventDatasetReload || ev.Rows != 3 {
			t.Fatalf("event=%+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("broadcast not received")
	}
}

func TestHub_Stats(t *testing.T) {
	hub := NewHub()
	if s := hub.Stats(); s.TCPClients != 0 || s.WSClients != 0 {
		t.Fatalf("stats=%+v, want zero", s)
	}

	client, server := net.Pipe()
	defer client.Close()
	hub.Add(server)
	if s := hub.Stats(); s.TCPClients != 1 {
		t.Fatalf("tcp clients=%d, want 1", s.TCPClients)
	}

	hub.Remove(server)
	if s := hub.Stats(); s.TCPClients != 0 {
		t.Fatalf("tcp clients=%d after remove, want 0", s.TCPClients)
	}
}
