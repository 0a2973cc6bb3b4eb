// Package khata implements a small single-user bookkeeping core: stock
// entries and customer debit/credit accounts kept in an embedded store,
// with derived summaries and single-file snapshot backup.
//
// A khata is the handwritten ledger book small shops keep for customer
// credit. This package is the same book, durable: the Store persists the
// records, the Book exposes the boundary operations and derives every
// summary on read, and the Snapshot codec moves a whole book in and out
// of one portable JSON file.
package khata
