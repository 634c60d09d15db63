package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterByQuery(t *testing.T) {
	restaurants := Mock()

	got := Filter(restaurants, Query{Search: "pizza"})
	require.Len(t, got, 1)
	require.Equal(t, "Pizza Palace", got[0].Name)
	require.Equal(t, "Italian", got[0].Cuisine)
}

func TestFilterByQueryMatchesCuisine(t *testing.T) {
	got := Filter(Mock(), Query{Search: "japanese"})
	require.Len(t, got, 1)
	require.Equal(t, "Sushi Zen", got[0].Name)
}

func TestFilterByCuisine(t *testing.T) {
	got := Filter(Mock(), Query{Cuisine: "Japanese"})
	require.Len(t, got, 1)
	require.Equal(t, "Sushi Zen", got[0].Name)
}

func TestFilterAllCuisinesUnsetOrAll(t *testing.T) {
	require.Len(t, Filter(Mock(), Query{}), 3)
	require.Len(t, Filter(Mock(), Query{Cuisine: "All"}), 3)
}

func TestSortByRatingDescending(t *testing.T) {
	got := Filter(Mock(), Query{SortBy: SortByRating})
	require.Len(t, got, 3)
	require.Equal(t, []float64{4.8, 4.5, 4.2}, []float64{got[0].Rating, got[1].Rating, got[2].Rating})
}

func TestSortByDeliveryTimeAscending(t *testing.T) {
	got := Filter(Mock(), Query{SortBy: SortByDeliveryTime})
	require.Equal(t, "Burger House", got[0].Name)
	require.Equal(t, "Pizza Palace", got[1].Name)
	require.Equal(t, "Sushi Zen", got[2].Name)
}

func TestSortByDeliveryFeeAscending(t *testing.T) {
	got := Filter(Mock(), Query{SortBy: SortByDeliveryFee})
	require.Equal(t, 1.99, got[0].DeliveryFee)
	require.Equal(t, 2.99, got[1].DeliveryFee)
	require.Equal(t, 3.99, got[2].DeliveryFee)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	restaurants := Mock()
	first := restaurants[0].Name

	Filter(restaurants, Query{Search: "pizza", SortBy: SortByRating})
	require.Equal(t, first, restaurants[0].Name)
	require.Len(t, restaurants, 3)
}

func TestRestaurantByID(t *testing.T) {
	c := New(Mock())

	r := c.RestaurantByID("3")
	require.NotNil(t, r)
	require.Equal(t, "Sushi Zen", r.Name)

	require.Nil(t, c.RestaurantByID("999"))
}

func TestMenuItemByID(t *testing.T) {
	c := New(Mock())

	r, item := c.MenuItemByID("2")
	require.NotNil(t, item)
	require.Equal(t, "Pepperoni Pizza", item.Name)
	require.Equal(t, "Pizza Palace", r.Name)

	r, item = c.MenuItemByID("does-not-exist")
	require.Nil(t, r)
	require.Nil(t, item)
}

func TestLeadingMinutes(t *testing.T) {
	require.Equal(t, 25, leadingMinutes("25-35 min"))
	require.Equal(t, 0, leadingMinutes("soon"))
}
