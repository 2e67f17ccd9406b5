package mailbox

// Package mailbox is the demo dataset behind the swipe lists: a small
// SQLite-backed message store with read, flag, archive and delete operations.
