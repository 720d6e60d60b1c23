package entities

import (
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// InventoryItem is one stack in a character's bag
type InventoryItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// ItemQuantity returns how many of itemID the character holds
func (c *Character) ItemQuantity(itemID string) int {
	for _, it := range c.Inventory {
		if it.ItemID == itemID {
			return it.Quantity
		}
	}
	return 0
}

// AddItem merges quantity into the stack for itemID, creating it if needed
func (c *Character) AddItem(itemID string, quantity int) {
	if quantity <= 0 {
		return
	}
	for i := range c.Inventory {
		if c.Inventory[i].ItemID == itemID {
			c.Inventory[i].Quantity += quantity
			return
		}
	}
	c.Inventory = append(c.Inventory, InventoryItem{ItemID: itemID, Quantity: quantity})
}

// AddItems merges every stack of items
func (c *Character) AddItems(items []InventoryItem) {
	for _, it := range items {
		c.AddItem(it.ItemID, it.Quantity)
	}
}

// RemoveItem takes quantity of itemID out of the bag. A stack that reaches
// zero is dropped.
func (c *Character) RemoveItem(itemID string, quantity int) error {
	for i := range c.Inventory {
		if c.Inventory[i].ItemID != itemID {
			continue
		}
		if c.Inventory[i].Quantity < quantity {
			return errors.InsufficientResourcef("only %d of %s in inventory", c.Inventory[i].Quantity, itemID)
		}
		c.Inventory[i].Quantity -= quantity
		if c.Inventory[i].Quantity == 0 {
			c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
		}
		return nil
	}
	return errors.NotFoundf("item %s not in inventory", itemID)
}
