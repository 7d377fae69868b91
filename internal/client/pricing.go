package client

import (
	"quality-detailing/internal/client/cart"
	"quality-detailing/internal/domain/catalog"
	"quality-detailing/internal/domain/pricing"
	resdto "quality-detailing/internal/handler/dto/response"
	"quality-detailing/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

var ErrPackageUnpriced = errs.New("package has no price for the selected size")

// AddToCart resolves the definitive price for the package at the chosen
// vehicle size and puts the line in the cart. A package no price path
// covers is refused here, so an unpriced line can never reach checkout.
func (c *Client) AddToCart(crt *cart.Cart, pkg *resdto.PackageResponse, size pricing.VehicleSize) error {
	entity := packageFromResponse(pkg)
	cents, ok := c.resolver.Resolve(entity, size)
	if !ok {
		return ErrPackageUnpriced
	}
	return crt.Add(cart.Item{
		PackageID:  pkg.ID,
		Name:       c.resolver.DisplayName(entity, size),
		PriceCents: cents,
		Size:       size,
	})
}

func packageFromResponse(resp *resdto.PackageResponse) *catalog.Package {
	var pkg catalog.Package
	_ = copier.Copy(&pkg, resp)
	return &pkg
}
