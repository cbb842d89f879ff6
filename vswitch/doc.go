// Package vswitch provides the in-process transport the simulated routers talk
// over. Each device id owns a mailbox, created the first time anything refers
// to it, and packets queue there until the owner polls for them.
package vswitch

// notes on locking orders

// the switch lock is only held to find or create a mailbox, never while a
// mailbox lock is held, so sends to unrelated mailboxes never serialize
