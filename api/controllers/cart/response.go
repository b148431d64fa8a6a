package cart

type ItemResponse struct {
	ProductID int64  `json:"product_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Type      string `json:"type,omitempty"`
	SizeName  string `json:"size_name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
	ImageURL  string `json:"image_url,omitempty"`
}

type CartResponse struct {
	Items      []ItemResponse `json:"items"`
	TotalItems int            `json:"total_items"`
	TotalPrice string         `json:"total_price"`
}

func newCartResponse(svc Service) CartResponse {
	lines := svc.Items()
	items := make([]ItemResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, ItemResponse{
			ProductID: line.ProductID,
			Code:      line.Code,
			Name:      line.Name,
			Type:      line.Type,
			SizeName:  line.SizeName,
			UnitPrice: line.UnitPrice.StringFixed(2),
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal().StringFixed(2),
			ImageURL:  line.ImageURL,
		})
	}
	return CartResponse{
		Items:      items,
		TotalItems: svc.TotalItems(),
		TotalPrice: svc.TotalPrice().StringFixed(2),
	}
}
