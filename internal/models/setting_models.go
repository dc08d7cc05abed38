package models

import "github.com/shopspring/decimal"

// SettingsUpdate is a shallow partial update of Settings.
type SettingsUpdate struct {
	RestaurantName *string          `json:"restaurantName"`
	ThemeColor     *string          `json:"themeColor"`
	Currency       *string          `json:"currency"`
	TaxRate        *decimal.Decimal `json:"taxRate"`
	ServiceCharge  *decimal.Decimal `json:"serviceCharge"`
}

// UserUpdate is a shallow partial update of a UserRecord.
// Password, when set, is hashed before it reaches the document.
type UserUpdate struct {
	Password    *string          `json:"password"`
	Name        *string          `json:"name"`
	Role        *string          `json:"role"`
	Email       *string          `json:"email"`
	Ownership   *decimal.Decimal `json:"ownership"`
	Investment  *decimal.Decimal `json:"investment"`
	Avatar      *string          `json:"avatar"`
	Permissions *[]string        `json:"permissions"`
}
