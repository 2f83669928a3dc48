// Package membership implements member registration and the contact form of
// the portal.
//
// A Service runs submitted records through the form engine, the option and
// duplicate checks, and then persists them through a MemberStore and a
// ContactStore. Router mounts the HTML pages (with DataStar patches) and the
// JSON API on a chi router.
//
// Two store implementations are provided: KVStore keeps every collection as
// one JSON document in a storage.Store (memory or Redis), PGStore keeps them
// in Postgres with the schema applied by Migrate.
package membership
