package model

type ItemCategory struct {
	ID           int64  `json:"id" validate:"required"`
	Name         string `json:"name"`
	InternalName string `json:"internal_name"`
	Description  string `json:"description"`
	Position     int    `json:"position"`
	IsAddon      bool   `json:"is_addon"`
}
