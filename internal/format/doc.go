// Package format renders values for terminal display.
//
// Sizes use binary units with precision that grows with magnitude: whole
// bytes below a kibibyte, one decimal for K and M, two decimals for G.
// The short forms keep the list and cleanup tables narrow.
package format
