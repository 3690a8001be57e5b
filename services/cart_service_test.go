package services

import (
	"testing"

	"github.com/amalakkad93/StarcoEat/entity"
	"github.com/amalakkad93/StarcoEat/pkg/apperr"

	"github.com/stretchr/testify/require"
)

func TestCartAddAppendsSeparateRows(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	itemA, _ := seedMenu(t, db, user)
	svc := newCartService(db)

	_, err := svc.Add(user.ID, itemA.ID, 1)
	require.NoError(t, err)
	_, err = svc.Add(user.ID, itemA.ID, 2)
	require.NoError(t, err)

	// same menu item twice -> two rows, not one merged row
	_, items, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 1, items[0].Quantity)
	require.Equal(t, 2, items[1].Quantity)
}

func TestCartAddRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	itemA, _ := seedMenu(t, db, user)
	svc := newCartService(db)

	_, err := svc.Add(user.ID, itemA.ID, 0)
	require.Error(t, err)
	require.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = svc.Add(user.ID, itemA.ID, -3)
	require.Error(t, err)
	require.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = svc.Add(user.ID, 99999, 1)
	require.Error(t, err)
	require.Equal(t, apperr.Validation, apperr.KindOf(err))

	// nothing persisted
	var n int64
	require.NoError(t, db.Model(&entity.CartItem{}).Count(&n).Error)
	require.Zero(t, n)
}

func TestCartGetOrCreateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	itemA, _ := seedMenu(t, db, user)
	svc := newCartService(db)

	_, err := svc.Add(user.ID, itemA.ID, 1)
	require.NoError(t, err)
	_, err = svc.Add(user.ID, itemA.ID, 1)
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&entity.Cart{}).Where("user_id = ?", user.ID).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

func TestCartUpdateQuantityRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	mallory := seedUser(t, db, "mallory")
	itemA, _ := seedMenu(t, db, alice)
	svc := newCartService(db)

	line, err := svc.Add(alice.ID, itemA.ID, 1)
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(mallory.ID, line.ID, 5)
	require.Error(t, err)
	require.Equal(t, apperr.Authorization, apperr.KindOf(err))

	// quantity untouched
	var got entity.CartItem
	require.NoError(t, db.First(&got, line.ID).Error)
	require.Equal(t, 1, got.Quantity)

	updated, err := svc.UpdateQuantity(alice.ID, line.ID, 5)
	require.NoError(t, err)
	require.Equal(t, 5, updated.Quantity)
}

func TestCartRemove(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	mallory := seedUser(t, db, "mallory")
	itemA, _ := seedMenu(t, db, alice)
	svc := newCartService(db)

	line, err := svc.Add(alice.ID, itemA.ID, 1)
	require.NoError(t, err)

	_, err = svc.Remove(mallory.ID, line.ID)
	require.Error(t, err)
	require.Equal(t, apperr.Authorization, apperr.KindOf(err))

	_, err = svc.Remove(alice.ID, line.ID)
	require.NoError(t, err)

	_, err = svc.Remove(alice.ID, line.ID)
	require.Error(t, err)
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestCartClear(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	itemA, itemB := seedMenu(t, db, user)
	svc := newCartService(db)

	err := svc.Clear(user.ID)
	require.Error(t, err)
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))

	fillCart(t, svc, user.ID,
		entity.CartItem{MenuItemID: itemA.ID, Quantity: 2},
		entity.CartItem{MenuItemID: itemB.ID, Quantity: 1},
	)

	require.NoError(t, svc.Clear(user.ID))

	_, items, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}
