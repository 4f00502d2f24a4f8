package duplex

import (
	"io"

	"github.com/gorilla/websocket"
)

// WSReader exposes the receive side of a websocket connection as a plain
// byte stream, so it can be fed to New. Message boundaries are erased: when
// the current message runs out of data, the next one is fetched with
// NextReader.
//
// A close from the peer (normal, going-away, or abnormal closure) is
// reported as io.EOF, because byte-stream consumers stacked on top of this
// reader (bufio, yamux) expect EOF rather than a websocket close code.
type WSReader struct {
	Conn  *websocket.Conn
	frame io.Reader
}

func (r *WSReader) Read(p []byte) (n int, err error) {
	for {
		if r.frame == nil {
			if _, r.frame, err = r.Conn.NextReader(); err != nil {
				return 0, wsStreamErr(err)
			}
		}
		n, err = r.frame.Read(p)
		if err == io.EOF {
			// This message is exhausted, move on to the next one.
			r.frame = nil
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, wsStreamErr(err)
	}
}

func wsStreamErr(err error) error {
	if websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseAbnormalClosure) {
		return io.EOF
	}
	return err
}

// WSWriter exposes the send side of a websocket connection as an
// io.WriteCloser. Each Write is sent as one binary message.
type WSWriter struct {
	Conn *websocket.Conn
}

func (w *WSWriter) Write(p []byte) (n int, err error) {
	if err = w.Conn.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close sends a close frame to the peer and tears down the connection.
func (w *WSWriter) Close() error {
	w.Conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return w.Conn.Close()
}

// NewWS combines the two directions of a websocket connection into a Duplex.
func NewWS(conn *websocket.Conn) *Duplex {
	return New(&WSReader{Conn: conn}, &WSWriter{Conn: conn})
}
