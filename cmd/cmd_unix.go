//go:build !js && !nacl && !plan9 && !windows && !zos
// +build !js,!nacl,!plan9,!windows,!zos

package cmd

import (
	"os"
	"os/signal"
	"syscall"
)

func (h *HellonetCmd) addPlatformSignalHandlers() {
	signal.Notify(h.signals, syscall.SIGUSR1)
}

// SIGUSR1 prints the switch mailbox counters of the running simulation
func (h *HellonetCmd) handlePlatformSignal(sig os.Signal) bool {
	if sig == syscall.SIGUSR1 {
		h.printMailboxes()
		return true
	}
	return false
}

func (h *HellonetCmd) sendPrintRequestSignal() {
	h.signals <- syscall.SIGUSR1
}
