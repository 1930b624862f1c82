// Package store provides durable key-value storage for shopadmin's session.
//
// It contains concrete implementations of domain.KeyValueStore:
//   - KVFileStore keeps all keys in a single JSON file under the configured
//     home directory, optionally sealed with a passphrase.
//   - MemoryStore keeps keys in memory and is used by tests and ephemeral runs.
//
// All methods are concurrency-safe via internal locking. Writes go through a
// temp file and rename so a crash never leaves a half-written file behind.
package store
