//go:build js || nacl || plan9 || windows || zos
// +build js nacl plan9 windows zos

package cmd

import "os"

// no SIGUSR1 support here, so these are no-ops

func (h *HellonetCmd) addPlatformSignalHandlers() {
}

func (h *HellonetCmd) handlePlatformSignal(os.Signal) bool {
	return false
}

func (h *HellonetCmd) sendPrintRequestSignal() {
}
