package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path"

	hcl "github.com/hashicorp/hcl"
)

// EchoConfig - configuration options for CLI flags or config file
type EchoConfig struct {
	LogFileName    string `json:"logFileName"`
	Prompt         string `json:"prompt"`
	configFileName string
	versionFlag    bool
}

// Load - Load configuration from config file if available and parse CLI options
// CLI options override any config file settings, having config file is useful
// for changing default options
func (conf *EchoConfig) Load() {
	defConfigFileName := os.Getenv("HOME") + "/." + path.Base(os.Args[0])
	flag.StringVar(&conf.configFileName, "config", defConfigFileName, "Config file path")
	flag.BoolVar(&conf.versionFlag, "version", false, "Print the duplex-echo version")
	flag.StringVar(&conf.LogFileName, "logfile", conf.LogFileName, "The name of the file to log")
	flag.StringVar(&conf.Prompt, "prompt", conf.Prompt, "Prompt to print before reading the line")
	flag.Parse()

	if conf.versionFlag {
		fmt.Printf("%s\n", version)
		os.Exit(0)
	}

	if fileInfo, err := os.Stat(conf.configFileName); os.IsNotExist(err) {
		// Ignore if default config file does not exist
		// but report error otherwise
		if conf.configFileName != defConfigFileName {
			fmt.Fprintf(os.Stderr, "Config failed: %s\n", err.Error())
			os.Exit(1)
		}
	} else {
		var data []byte
		if fileInfo.Size() > 0x100000 {
			// Config larger than 1MiB makes no sense for this little program, report and exit
			fmt.Fprintf(os.Stderr, "Config failed: config file '%s' is too big\n", conf.configFileName)
			os.Exit(3)
		}
		if data, err = ioutil.ReadFile(conf.configFileName); err != nil {
			fmt.Fprintf(os.Stderr, "Config failed: %s\n", err.Error())
			os.Exit(2)
		}
		if err = hcl.Decode(conf, string(data)); err != nil {
			fmt.Fprintf(os.Stderr, "Config failed: %s\n", err.Error())
			os.Exit(4)
		}
		fmt.Printf("Configuration loaded from '%s'\n\n", conf.configFileName)
	}
	// Override config file options with CLI / give priority to CLI
	flag.Parse()
}
