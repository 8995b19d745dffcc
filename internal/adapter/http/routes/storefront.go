package routes

import (
	"meopastel/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMenu        = "/menu"
	PathSession     = "/session"
	PathCart        = "/cart"
	PathOrders      = "/orders"
	PathSuggestions = "/suggestions"
	PathCheckout    = "/checkout"
)

func addStorefrontRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	selectionHandler *handlers.SelectionHandler,
	cartHandler *handlers.CartHandler,
	deliveryHandler *handlers.DeliveryHandler,
	subOrderHandler *handlers.SubOrderHandler,
	suggestionHandler *handlers.SuggestionHandler,
	checkoutHandler *handlers.CheckoutHandler,
) {
	rg.GET(PathMenu, catalogHandler.GetMenu)

	session := rg.Group(PathSession)
	{
		session.GET("", checkoutHandler.GetSession)
		session.PUT("/view", selectionHandler.SetView)
		session.PUT("/customer", checkoutHandler.SetCustomerName)
		session.PUT("/label", checkoutHandler.SetLabel)
		session.PUT("/consumption", checkoutHandler.SetConsumptionMethod)
		session.PUT("/payment", checkoutHandler.SetPaymentMethod)

		session.POST("/selection/fillings", selectionHandler.AddFilling)
		session.DELETE("/selection/fillings/:index", selectionHandler.RemoveAt)
		session.PATCH("/selection/remove-last", selectionHandler.RemoveLastMatching)
		session.POST("/selection/commit", selectionHandler.Commit)

		session.PUT("/delivery", deliveryHandler.UpdateAddress)
		session.POST("/delivery/cep-lookup", deliveryHandler.LookupCEP)
		session.POST("/delivery/estimate", deliveryHandler.EstimateFee)
	}

	cart := rg.Group(PathCart)
	{
		cart.POST("/beverages", cartHandler.AddBeverage)
		cart.DELETE("/beverages/:name", cartHandler.RemoveBeverageUnit)
		cart.PATCH("/lines/:line_id/quantity", cartHandler.SetQuantity)
		cart.DELETE("/lines/:line_id", cartHandler.RemoveLine)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("/close", subOrderHandler.CloseOrder)
		orders.DELETE("/:order_id", subOrderHandler.RemoveSubOrder)
	}

	suggestionsGroup := rg.Group(PathSuggestions)
	{
		suggestionsGroup.GET("", suggestionHandler.Generate)
		suggestionsGroup.POST("/apply", suggestionHandler.Apply)
	}

	rg.POST(PathCheckout, checkoutHandler.Submit)
}
