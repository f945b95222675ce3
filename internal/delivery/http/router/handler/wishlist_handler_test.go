package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWishlistQueryContext(rawQuery string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/productWishList?"+rawQuery, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestParseWishlistItemIDs_CommaSeparated(t *testing.T) {
	c := newWishlistQueryContext("wishlistItemIds=31,47,52")

	ids, err := parseWishlistItemIDs(c)

	require.NoError(t, err)
	assert.Equal(t, []int64{31, 47, 52}, ids)
}

func TestParseWishlistItemIDs_RepeatedParams(t *testing.T) {
	c := newWishlistQueryContext("wishlistItemIds=31&wishlistItemIds=47")

	ids, err := parseWishlistItemIDs(c)

	require.NoError(t, err)
	assert.Equal(t, []int64{31, 47}, ids)
}

func TestParseWishlistItemIDs_BracketedArrayStyle(t *testing.T) {
	c := newWishlistQueryContext("wishlistItemIds[]=31&wishlistItemIds[]=47")

	ids, err := parseWishlistItemIDs(c)

	require.NoError(t, err)
	assert.Equal(t, []int64{31, 47}, ids)
}

func TestParseWishlistItemIDs_Empty(t *testing.T) {
	c := newWishlistQueryContext("")

	ids, err := parseWishlistItemIDs(c)

	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestParseWishlistItemIDs_Garbage(t *testing.T) {
	c := newWishlistQueryContext("wishlistItemIds=31,abc")

	_, err := parseWishlistItemIDs(c)

	require.Error(t, err)
}
