package cart

import (
	"github.com/shopspring/decimal"

	cartstore "github.com/angelmondragon/storefront-gate/internal/cart"
	pkgerrors "github.com/angelmondragon/storefront-gate/pkg/errors"
)

type AddItemRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Code      string `json:"code" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Type      string `json:"type"`
	SizeName  string `json:"size_name" validate:"required"`
	UnitPrice string `json:"unit_price" validate:"required"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"image_url"`
}

func (r AddItemRequest) toLineItem() (cartstore.LineItem, error) {
	price, err := decimal.NewFromString(r.UnitPrice)
	if err != nil {
		return cartstore.LineItem{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid unit price")
	}
	return cartstore.LineItem{
		ProductID: r.ProductID,
		Code:      r.Code,
		Name:      r.Name,
		Type:      r.Type,
		SizeName:  r.SizeName,
		UnitPrice: price,
		Quantity:  r.Quantity,
		ImageURL:  r.ImageURL,
	}, nil
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
