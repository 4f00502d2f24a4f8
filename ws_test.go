package duplex

import (
	"bufio"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func TestWebSocketDuplexEcho(t *testing.T) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("Upgrade failed: %v", err)
			return
		}
		stream := NewWS(conn)
		defer stream.Close()

		lines := bufio.NewReader(stream)
		line, err := lines.ReadBytes('\n')
		if err != nil {
			t.Errorf("Server side read failed: %v", err)
			return
		}
		if _, err := stream.Write(line); err != nil {
			t.Errorf("Server side write failed: %v", err)
		}
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	stream := NewWS(conn)
	defer stream.Close()

	sent := "hello over websocket\n"
	if _, err := stream.Write([]byte(sent)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	line, err := bufio.NewReader(stream).ReadString('\n')
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if line != sent {
		t.Errorf("Echoed %q, expected %q", line, sent)
	}
}

func TestWSReaderSpansMessages(t *testing.T) {
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("Upgrade failed: %v", err)
			return
		}
		writer := &WSWriter{Conn: conn}
		// Two messages that form one logical byte stream
		writer.Write([]byte("first,"))
		writer.Write([]byte("second"))
		writer.Close()
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	all, err := ioutil.ReadAll(&WSReader{Conn: conn})
	if err != nil {
		t.Fatalf("Reading the stream failed: %v", err)
	}
	if string(all) != "first,second" {
		t.Errorf("Stream contained %q, expected %q", all, "first,second")
	}
}
