// Package cart implements the per-user quantity-by-item mapping.
//
// A cart is a fixed range of item slots, 0 through 299, each holding a
// non-negative quantity. The slot range mirrors the layout of carts already
// persisted by the previous backend: a JSON object with string keys "0".."299"
// all present, zero-filled. Keeping every slot materialized (instead of a
// sparse map) keeps stored carts readable by both versions.
package cart

import "errors"

// SlotCount is the fixed number of item slots in every cart.
const SlotCount = 300

// ErrSlotOutOfRange is returned when an item id falls outside [0, SlotCount).
var ErrSlotOutOfRange = errors.New("item id out of range")

// Cart maps an item slot index to a quantity. encoding/json renders integer
// keys as strings, which matches the persisted layout exactly.
type Cart map[int]int

// New returns a cart with all slots present and zeroed.
func New() Cart {
	c := make(Cart, SlotCount)
	for i := 0; i < SlotCount; i++ {
		c[i] = 0
	}
	return c
}

// Increment adds one to the slot. There is no upper cap.
func (c Cart) Increment(itemID int) error {
	if itemID < 0 || itemID >= SlotCount {
		return ErrSlotOutOfRange
	}
	c[itemID]++
	return nil
}

// Decrement subtracts one from the slot, flooring at zero.
func (c Cart) Decrement(itemID int) error {
	if itemID < 0 || itemID >= SlotCount {
		return ErrSlotOutOfRange
	}
	if c[itemID] > 0 {
		c[itemID]--
	}
	return nil
}

// Quantity returns the quantity in the slot, 0 for unknown slots.
func (c Cart) Quantity(itemID int) int {
	return c[itemID]
}
