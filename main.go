package main

import (
	"fmt"
	"os"

	"github.com/go-i2p/base32h/lib/cli"
	"github.com/go-i2p/base32h/lib/util/logger"
)

var log = logger.GetBase32hLogger()

func main() {
	if err := cli.Execute(); err != nil {
		log.WithError(err).Debug("command failed")
		fmt.Fprintf(os.Stderr, "base32h: %s\n", err)
		os.Exit(1)
	}
}
