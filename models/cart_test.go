package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(id, name string, price float64) MenuItem {
	return MenuItem{ID: id, Name: name, Category: "biryani", Price: price, IsAvailable: true}
}

func TestCartAddItem_AccumulatesQuantity(t *testing.T) {
	cart := NewCart()
	item := menuItem("b3", "Chicken Dum Biryani", 200)

	cart.AddItem(item)
	cart.AddItem(item)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 400.0, cart.Total())
}

func TestCartTotal_MatchesSumOverLines(t *testing.T) {
	cart := NewCart()
	assert.Equal(t, 0.0, cart.Total())

	cart.AddItem(menuItem("s3", "Paneer Tikka", 160))
	cart.AddItem(menuItem("b1", "Veg Biryani", 140))
	cart.AddItem(menuItem("b1", "Veg Biryani", 140))
	cart.UpdateQuantity("s3", 3)

	// 160*3 + 140*2
	assert.Equal(t, 760.0, cart.Total())

	cart.RemoveItem("s3")
	assert.Equal(t, 280.0, cart.Total())
}

func TestCartUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("d1", "Gulab Jamun (2 pcs)", 40))

	cart.UpdateQuantity("d1", 0)

	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartUpdateQuantity_NegativeRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("d1", "Gulab Jamun (2 pcs)", 40))

	cart.UpdateQuantity("d1", -2)

	assert.Equal(t, 0, cart.Len())
}

func TestCartUpdateQuantity_AbsentIDIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("m4", "Butter Chicken", 200))

	cart.UpdateQuantity("nope", 5)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "m4", lines[0].ItemID)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCartUpdateQuantity_SetsNotIncrements(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("m4", "Butter Chicken", 200))

	cart.UpdateQuantity("m4", 4)
	cart.UpdateQuantity("m4", 2)

	assert.Equal(t, 2, cart.Lines()[0].Quantity)
}

func TestCartRemoveItem_AbsentIDIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("c2", "Chicken Noodles", 150))

	cart.RemoveItem("absent")

	assert.Equal(t, 1, cart.Len())
}

func TestCartClear_EmptiesEverything(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("c2", "Chicken Noodles", 150))
	cart.AddItem(menuItem("dr6", "Filter Coffee", 30))

	cart.Clear()

	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, 0.0, cart.Total())
	assert.Empty(t, cart.Lines())
}

func TestCartLines_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("dr7", "Tea", 20))
	cart.AddItem(menuItem("b3", "Chicken Dum Biryani", 200))
	cart.AddItem(menuItem("s2", "Gobi 65", 130))
	cart.RemoveItem("b3")
	cart.AddItem(menuItem("b3", "Chicken Dum Biryani", 200))

	var ids []string
	for _, l := range cart.Lines() {
		ids = append(ids, l.ItemID)
	}
	assert.Equal(t, []string{"dr7", "s2", "b3"}, ids)
}

func TestCartLines_ReturnsCopy(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("dr7", "Tea", 20))

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}
