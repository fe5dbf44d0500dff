package model

import "time"

type Food struct {
	ID   string  `json:"id" bson:"_id"`
	Name string  `json:"name" bson:"name" validate:"required,min=1,max=100"`
	Cost float64 `json:"cost" bson:"cost" validate:"gte=0"`
}

type Restaurant struct {
	ID          string   `json:"id" bson:"_id"`
	Name        string   `json:"name" bson:"name" validate:"required,min=1,max=100"`
	PictureList []string `json:"pictureList" bson:"pictureList"`
	Menu        []string `json:"menu" bson:"menu"`
	Address     string   `json:"address" bson:"address"`
}

// FoodOrder is both the cart draft and the persisted order. FoodID and
// FoodAmount are index-aligned.
type FoodOrder struct {
	ID                     string    `json:"id"`
	UserID                 string    `json:"userID"`
	RestaurantID           string    `json:"restaurantID"`
	Cost                   float64   `json:"cost"`
	OrderDate              time.Time `json:"orderDate"`
	IsDelivered            bool      `json:"delivered"`
	TravelTime             time.Time `json:"travelTime"`
	FoodID                 []string  `json:"foodID"`
	FoodAmount             []int     `json:"foodAmount"`
	AddressOriginList      []string  `json:"addressOriginList"`
	AddressDestinationList []string  `json:"addressDestinationList"`
	SpecialInstructions    string    `json:"specialInstructions"`
	AddressName            string    `json:"addressName"`
}

type User struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	SignUpDate        time.Time `json:"signUpDate"`
	ProfilePictureURL string    `json:"profilePictureURL"`
	OrderHistory      []string  `json:"orderHistory"`
}
