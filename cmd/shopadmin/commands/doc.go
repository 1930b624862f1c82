// Package commands defines the shopadmin CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login    Sign in and save the session token
//   - logout   Forget the saved session
//   - status   Show whether a session is saved
//   - list     Show the pending shopkeepers
//   - accept   Verify shopkeepers by id (or --all)
//   - delete   Delete shopkeepers by id (or --all), after confirmation
//   - panel    Interactive approval session
//
// # Implementation
//
// The root command loads configuration and builds the dependency graph
// (session store, backend client, panel) before any subcommand runs, so
// handlers share one app context.
package commands
