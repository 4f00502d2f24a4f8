// duplex-echo reads one line from the standard input and writes it back to
// the standard output, doing both through a single combined stream.
package main

import (
	"fmt"
	"io"
	"os"

	duplex "github.com/duplexio/duplex"
	logrus "github.com/sirupsen/logrus"
)

var log = logrus.New()
var version string = "0.0.0"
var config = EchoConfig{ // default configuration options
	LogFileName: "-",
	Prompt:      "",
}

// readLine consumes bytes up to and including the first newline, using the
// peek/discard capability of the buffered duplex.
func readLine(stdio *duplex.BufDuplex) (line []byte, err error) {
	for {
		var next []byte
		next, err = stdio.Peek(1)
		if len(next) == 0 {
			return line, err
		}
		line = append(line, next[0])
		stdio.Discard(1)
		if next[0] == '\n' {
			return line, nil
		}
	}
}

func main() {
	config.Load()
	log.Level = logrus.ErrorLevel
	if config.LogFileName != "-" {
		fmt.Printf("Writing logs to: %s\n", config.LogFileName)
		logFile, err := os.Create(config.LogFileName)
		if err != nil {
			fmt.Printf("Can't open %s for writing logs\n", config.LogFileName)
		}
		log.Level = logrus.DebugLevel
		log.Out = logFile
	}

	// One object that reads from stdin and writes to stdout
	stdio := duplex.Stdio()

	if config.Prompt != "" {
		stdio.Write([]byte(config.Prompt))
	}

	line, err := readLine(stdio)
	if err != nil && err != io.EOF {
		log.Error("Reading the input failed: ", err.Error())
		fmt.Fprintf(os.Stderr, "duplex-echo: %s\n", err.Error())
		os.Exit(1)
	}
	log.Debugf("Read %d bytes, echoing them back", len(line))

	if _, err := stdio.Write(line); err != nil {
		log.Error("Writing the output failed: ", err.Error())
		os.Exit(1)
	}
	stdio.Flush()
}
