// Package app wires application dependencies for the CLI.
//
// It loads Config from flags, environment and an optional config file, then
// builds the session store, backend client, logger and panel, exposing them
// via the Wire struct for commands to use.
package app
