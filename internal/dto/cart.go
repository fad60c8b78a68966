package dto

// CartItemRequest is the JSON body for /addtocart and /removefromcart.
// ItemID is a pointer so slot 0 passes the required binding.
type CartItemRequest struct {
	ItemID *int `json:"itemId" binding:"required"`
}
