package appstate

import (
	"time"

	"foodrun/model"
	"foodrun/ordercalc"
)

type AuthenticationState int

const (
	Unauthenticated AuthenticationState = iota
	Authenticated
	InvalidAuthentication
)

func (a AuthenticationState) String() string {
	switch a {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	case InvalidAuthentication:
		return "invalid_authentication"
	}
	return "unknown"
}

// Image is a picked profile picture waiting to be uploaded.
type Image struct {
	Data        []byte
	ContentType string
}

// View is an immutable snapshot of the application state. Observers receive
// copies; mutating one has no effect on the State.
type View struct {
	Auth              AuthenticationState
	UserID            string
	UserName          string
	UserEmail         string
	ProfilePictureURL string
	SelectedImage     *Image
	ErrorMessage      string

	Restaurants         []model.Restaurant
	FilteredRestaurants []model.Restaurant
	RecentRestaurants   []model.Restaurant
	SelectedRestaurant  *model.Restaurant
	Foods               []model.Food
	RestaurantFoods     []model.Food

	// CurrentOrder is the draft being built, or the order being tracked.
	CurrentOrder   *model.FoodOrder
	Orders         []model.FoodOrder
	FilteredOrders []model.FoodOrder

	WeeklySpending         []float64
	SelectedDate           time.Time
	SelectedDateOrderCount int
	SelectedDateTotalCost  float64
}

func emptyView() View {
	return View{WeeklySpending: make([]float64, ordercalc.WeekDays)}
}

func (v View) clone() View {
	out := v
	out.Restaurants = cloneRestaurants(v.Restaurants)
	out.FilteredRestaurants = cloneRestaurants(v.FilteredRestaurants)
	out.RecentRestaurants = cloneRestaurants(v.RecentRestaurants)
	out.Foods = append([]model.Food(nil), v.Foods...)
	out.RestaurantFoods = append([]model.Food(nil), v.RestaurantFoods...)
	out.Orders = cloneOrders(v.Orders)
	out.FilteredOrders = cloneOrders(v.FilteredOrders)
	out.WeeklySpending = append([]float64(nil), v.WeeklySpending...)
	if v.SelectedRestaurant != nil {
		r := cloneRestaurant(*v.SelectedRestaurant)
		out.SelectedRestaurant = &r
	}
	if v.CurrentOrder != nil {
		o := cloneOrder(*v.CurrentOrder)
		out.CurrentOrder = &o
	}
	if v.SelectedImage != nil {
		img := Image{Data: append([]byte(nil), v.SelectedImage.Data...), ContentType: v.SelectedImage.ContentType}
		out.SelectedImage = &img
	}
	return out
}

func cloneRestaurant(r model.Restaurant) model.Restaurant {
	r.PictureList = cloneStrings(r.PictureList)
	r.Menu = cloneStrings(r.Menu)
	return r
}

func cloneRestaurants(in []model.Restaurant) []model.Restaurant {
	if in == nil {
		return nil
	}
	out := make([]model.Restaurant, len(in))
	for i, r := range in {
		out[i] = cloneRestaurant(r)
	}
	return out
}

func cloneOrder(o model.FoodOrder) model.FoodOrder {
	o.FoodID = cloneStrings(o.FoodID)
	if o.FoodAmount != nil {
		o.FoodAmount = append([]int{}, o.FoodAmount...)
	}
	o.AddressOriginList = cloneStrings(o.AddressOriginList)
	o.AddressDestinationList = cloneStrings(o.AddressDestinationList)
	return o
}

func cloneOrders(in []model.FoodOrder) []model.FoodOrder {
	if in == nil {
		return nil
	}
	out := make([]model.FoodOrder, len(in))
	for i, o := range in {
		out[i] = cloneOrder(o)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
