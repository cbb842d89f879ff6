package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/fastcat/hellonet/cmd"
	"github.com/fastcat/hellonet/log"
)

func main() {
	err := realMain()
	// don't print on error just because help was requested
	if err != nil && !errors.Is(err, pflag.ErrHelp) {
		if log.IsDebug() {
			// include the stack trace
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		defer os.Exit(1)
	}
}

func realMain() error {
	h := cmd.New(os.Args)
	defer h.Close()
	if err := h.Init(); err != nil {
		return err
	}
	return h.Run(os.Stdin, os.Stdout)
}
