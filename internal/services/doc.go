// Package services implements the operations of the attendance ledger on top
// of the repositories.
//
// Every operation acquires the exclusive lock of the shared dbx.Conn, runs in
// one transaction and returns either a typed result or an error from the
// common taxonomy: validation, not found, duplicate id, missing config, or a
// *common.StorageError for anything the database itself reported.
//
// Time is read from an injected Clock so that "today" and every stored
// timestamp come from one source.
package services
