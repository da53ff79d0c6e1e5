package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/dto"
	"storefront/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	publishableKey  string
}

func NewCheckoutHandler(checkoutService service.CheckoutService, publishableKey string) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		publishableKey:  publishableKey,
	}
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.checkoutService.Checkout(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// PublishableKey hands the browser the key it needs to initialise Stripe's
// client-side SDK.
func (h *CheckoutHandler) PublishableKey(c echo.Context) error {
	return c.JSON(http.StatusOK, &dto.PublishableKeyResponse{
		PublishableKey: h.publishableKey,
	})
}
