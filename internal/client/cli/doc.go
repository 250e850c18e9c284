// Package cli provides the interactive Waygate command-line client.
//
// It wires configuration, the local session cache, the gRPC API client,
// and an interactive REPL that renders the screens decided by the
// navigation orchestrator and follows its redirects. Typical flow:
// restore the cached session, start a background connectivity watcher,
// and execute user commands.
//
// Key features:
//   - Login / Logout against the Waygate server
//   - Intro, waypoint list, and game screens for students
//   - Progress reporting and readback
//   - Bulk account provisioning and waypoint upload for admins
//
// The REPL is started via App.Root(ctx), which blocks until the user
// exits. See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
