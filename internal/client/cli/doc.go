// Package cli provides the interactive VaultDesk command-line client.
//
// It wires configuration, the backend bridge connection, the local preference
// store and an interactive REPL. Typical flow: prompt for the master
// password, open a session, and execute user commands until lock or exit.
//
// Key features:
//   - Unlock / Lock with idle auto-lock
//   - Data cards and bank cards: add, edit, delete, restore, purge
//   - Navigation buckets, search, filters and configurable sorting
//   - Folders, attachments, one-time codes, clipboard with auto-clear
//   - Settings, backup and restore
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
