// SPDX-License-Identifier: MIT
package lexer

type (
	// ItemID int holding an identifier for the Item tokens
	ItemID int

	// Item type holding token, value & item type of scanned runes
	Item struct {
		Val string // The value of this Item
		ID  ItemID // The type of this Item
		Pos int    // The starting position, (in bytes) of this Item
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_             = iota // Consume 0 to start actual numbering at 1.
	ItemDelimiter        // References the path delimiter.
	ItemEOF              // End of the path
	ItemSegment          // Path segment, a node identifier.
)
