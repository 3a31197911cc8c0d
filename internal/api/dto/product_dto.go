package dto

// ProductCreateRequest payload for new products.
type ProductCreateRequest struct {
	ID       string `json:"P_ID"`
	Name     string `json:"P_Name"`
	Quantity int64  `json:"Quantity"`
	Image    string `json:"image"`
}

// ProductUpdateRequest payload for partial product updates.
type ProductUpdateRequest struct {
	ID       *string `json:"P_ID"`
	Name     *string `json:"P_Name"`
	Quantity *int64  `json:"Quantity"`
	Image    *string `json:"image"`
}

// ProductResponse is a product listing row with reconciled quantity.
type ProductResponse struct {
	ID       string `json:"P_ID"`
	Name     string `json:"P_Name"`
	Quantity int64  `json:"Quantity"`
	Image    string `json:"image"`
}
