// Package migrations embeds the SQL schema changes of the local store.
//
// Every file is one named, forward-only change applied at most once. The
// name of a change is the file name without its numeric prefix and the .sql
// extension, e.g. 00002_users.store_start_and_stop_time.sql is
// "users.store_start_and_stop_time". Never edit or renumber an existing file:
// installed clients already recorded it in their ledger.
//
// The goose ledger (goose_db_version) is keyed by the numeric prefix, not by
// the name: a file renamed under the same number counts as applied. Databases
// created by older clients with a different ledger table are not adopted;
// opening one fails because the first change conflicts with existing tables.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
