package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStore_GetMissing(t *testing.T) {
	store := NewRecordStore()

	v, err := store.Get(context.Background(), "grocery_list")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRecordStore_PutOverwrites(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "grocery_list", []byte(`[1]`)))
	require.NoError(t, store.Put(ctx, "grocery_list", []byte(`[2]`)))

	v, err := store.Get(ctx, "grocery_list")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[2]`), v)
}

func TestRecordStore_ValuesAreCopied(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", in))
	in[0] = 'x'

	out, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	out[0] = 'y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestRecordStore_Delete(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"), "deleting a missing key is a no-op")

	v, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
}
