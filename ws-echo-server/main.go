// ws-echo-server accepts websocket connections and echoes every line it
// receives back to the sender. Each connection's two directions are combined
// into one stream, so the echo loop only ever deals with a single object.
package main

import (
	"bufio"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"

	duplex "github.com/duplexio/duplex"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	logrus "github.com/sirupsen/logrus"
)

var log = logrus.New()

func wsHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	channel := vars["channel"]
	defer log.Debug("Finished WS connection for ", channel)

	// Validate incoming request.
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// Upgrade to Websocket mode.
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("Cannot create the WS connection for channel ", channel, ". Error: ", err.Error())
		return
	}

	stream := duplex.NewWS(conn)
	defer stream.Close()

	lines := bufio.NewReader(stream)
	for {
		line, err := lines.ReadBytes('\n')
		if len(line) > 0 {
			if _, werr := stream.Write(line); werr != nil {
				log.Error("Write failed for channel ", channel, ": ", werr.Error())
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				log.Error("Read failed for channel ", channel, ": ", err.Error())
			}
			return
		}
	}
}

func main() {
	webAddress := flag.String("web_address", ":6544", "The bind address for the echo server")
	flag.Parse()

	log.SetLevel(logrus.DebugLevel)

	routesHandler := mux.NewRouter()
	routesHandler.HandleFunc("/ws/{channel}", wsHandler)

	server := &http.Server{
		Addr:    *webAddress,
		Handler: routesHandler,
	}

	// Install a signal and wait until we get Ctrl-C
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		s := <-c
		log.Debug("Received signal <", s, ">. Stopping the server")
		server.Close()
	}()

	log.Info("Listening on address: http://", *webAddress)
	err := server.ListenAndServe()
	log.Debug("Exiting. Error: ", err)
}
