// Package cli provides the interactive attendance terminal.
//
// The terminal starts in kiosk mode, where employees register entries and
// exits by id and anyone can see today's figures. Typing "admin" and the
// shared passphrase switches to admin mode, which adds record browsing with
// filters, edits, deletions, spreadsheet export and employee management.
//
// The REPL is started with App.Run(ctx), which blocks until the input ends
// or the operator types "exit". See runREPL for the command table.
package cli
