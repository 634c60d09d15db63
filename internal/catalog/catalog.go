package catalog

// Restaurant is immutable mock data for the lifetime of the process.
type Restaurant struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Image        string     `json:"image"`
	Cuisine      string     `json:"cuisine"`
	Rating       float64    `json:"rating"`
	DeliveryTime string     `json:"deliveryTime"`
	DeliveryFee  float64    `json:"deliveryFee"`
	MinimumOrder float64    `json:"minimumOrder"`
	Description  string     `json:"description"`
	Address      string     `json:"address"`
	Phone        string     `json:"phone"`
	IsOpen       bool       `json:"isOpen"`
	Menu         []MenuItem `json:"menu"`
}

type MenuItem struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Image          string   `json:"image"`
	Category       string   `json:"category"`
	IsVegetarian   bool     `json:"isVegetarian"`
	IsSpicy        bool     `json:"isSpicy"`
	Customizations []string `json:"customizations,omitempty"`
}

// Catalog holds the static restaurant list and answers lookups.
// It never mutates after construction.
type Catalog struct {
	restaurants []Restaurant
	byID        map[string]*Restaurant
}

func New(restaurants []Restaurant) *Catalog {
	c := &Catalog{
		restaurants: restaurants,
		byID:        make(map[string]*Restaurant, len(restaurants)),
	}
	for i := range c.restaurants {
		c.byID[c.restaurants[i].ID] = &c.restaurants[i]
	}
	return c
}

func (c *Catalog) Restaurants() []Restaurant {
	return c.restaurants
}

// RestaurantByID returns nil for an unknown id; callers surface this as
// an explicit not-found state rather than an error.
func (c *Catalog) RestaurantByID(id string) *Restaurant {
	return c.byID[id]
}

// MenuItemByID resolves a menu item and its owning restaurant.
func (c *Catalog) MenuItemByID(id string) (*Restaurant, *MenuItem) {
	for i := range c.restaurants {
		r := &c.restaurants[i]
		for j := range r.Menu {
			if r.Menu[j].ID == id {
				return r, &r.Menu[j]
			}
		}
	}
	return nil, nil
}

func (c *Catalog) Cuisines() []string {
	return []string{"All", "Italian", "American", "Japanese", "Chinese", "Mexican", "Indian"}
}
