package entity

import (
	"errors"

	"github.com/samdwyer/pathofheroes/internal/gamedata"
)

var (
	// ErrNoItem is returned when using an item the hero does not carry.
	ErrNoItem = errors.New("item not in inventory")
	// ErrFullHealth is returned when healing a hero already at maximum HP.
	ErrFullHealth = errors.New("already at full health")
)

// ItemStack is a quantity of one item. Quantity is always at least 1.
type ItemStack struct {
	Item     *gamedata.ItemDef
	Quantity int
}

// Inventory is the hero's list of item stacks in pickup order.
type Inventory []ItemStack

// Add increments the stack for item, creating it when absent.
func (inv *Inventory) Add(item *gamedata.ItemDef, quantity int) {
	if quantity <= 0 {
		return
	}
	if stack := inv.Find(item.ID); stack != nil {
		stack.Quantity += quantity
		return
	}
	*inv = append(*inv, ItemStack{Item: item, Quantity: quantity})
}

// Remove decrements the stack for id and drops it when it reaches zero.
// It returns false if the item is not carried in that quantity.
func (inv *Inventory) Remove(id string, quantity int) bool {
	for i := range *inv {
		stack := &(*inv)[i]
		if stack.Item.ID != id {
			continue
		}
		if stack.Quantity < quantity {
			return false
		}
		stack.Quantity -= quantity
		if stack.Quantity == 0 {
			*inv = append((*inv)[:i], (*inv)[i+1:]...)
		}
		return true
	}
	return false
}

// Find returns the stack for id, or nil.
func (inv Inventory) Find(id string) *ItemStack {
	for i := range inv {
		if inv[i].Item.ID == id {
			return &inv[i]
		}
	}
	return nil
}

// Count returns how many of id are carried.
func (inv Inventory) Count(id string) int {
	if stack := inv.Find(id); stack != nil {
		return stack.Quantity
	}
	return 0
}
