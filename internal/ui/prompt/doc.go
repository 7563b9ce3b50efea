// Package prompt provides simple interactive prompts.
//
// This package contains standalone interactive prompts for the
// confirmation and selection steps of destructive commands.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation, defaulting to no
//   - [ConfirmTyped]: confirmation that requires typing a word
//   - [Select]: single selection from a list
//
// All prompts render on stderr so stdout stays scriptable.
package prompt
