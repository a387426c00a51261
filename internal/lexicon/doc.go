// Package lexicon loads per-language pronunciation dictionaries, resolves
// lookups across language variants and annotates text with inline
// pronunciation hints for the speech synthesiser.
//
// Lexicons live as plain text files named <code>.txt inside one directory.
// The Manager parses the whole directory into an immutable Set and publishes
// it atomically, so lookups never take a lock and never observe a half-built
// Set while a reload is in progress.
package lexicon
