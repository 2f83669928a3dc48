// Package storage is a small JSON key-value store used for the portal's
// collections (members, contacts) when no relational database is configured.
//
// Values are stored as JSON documents, so Set takes a deep copy: mutating the
// caller's value afterwards never changes what is stored, and Get always
// decodes a fresh value. Two backends implement Store:
//
//   - Memory keeps documents in process, guarded by a RWMutex.
//   - Redis keeps documents under a key prefix; Clear removes only keys
//     under that prefix.
//
// Update is a read-modify-write of one key. Memory holds its lock for the
// whole call; Redis uses WATCH and retries when another writer got there
// first.
package storage
