package item

type CreateItemReq struct {
	Type        string `json:"type" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Contact     string `json:"contact"`
}

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required"`
}
