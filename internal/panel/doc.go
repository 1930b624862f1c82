// Package panel implements the shopkeeper approval panel: the admin session,
// the list of unverified shopkeepers, the operator's selection and the
// transient status message.
//
// A Panel is driven by its callers (the CLI commands or the interactive
// prompt) and talks to the marketplace through a domain.Backend. The session
// token is persisted in a domain.KeyValueStore under TokenKey so a restart
// does not force a new sign-in.
//
// # Guards
//
// Sign-in, accept and delete share one non-blocking guard: while one of them
// is in flight the others fail with domain.ErrActionInProgress. List refreshes
// use a separate guard that collapses overlapping refreshes into a single
// request. After every successful accept or delete the list is fetched again
// instead of being patched locally.
//
// # Messages
//
// Every outcome is reported through a single status message that clears
// itself after MessageTTL. A newer message replaces the pending one and its
// timer.
package panel
