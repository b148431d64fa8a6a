package cart

import "github.com/shopspring/decimal"

// LineItem is one product/size entry in the persisted cart. Two items with
// the same (ProductID, SizeName) are the same logical line and merge
// quantities instead of duplicating.
type LineItem struct {
	ProductID int64           `json:"product_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	SizeName  string          `json:"size_name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"image_url"`
}

func (i LineItem) sameLine(other LineItem) bool {
	return i.ProductID == other.ProductID && i.SizeName == other.SizeName
}

// Subtotal is UnitPrice multiplied by Quantity.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
