package dtos

type PrayerResponse struct {
	Id       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required,oneof=essential marian devotional creed"`
	Text     string `json:"text" validate:"required"`
}
