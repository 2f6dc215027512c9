package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/subscription"

	"github.com/labstack/echo/v4"
)

// QuoteSubscription handles GET /api/v1/clients/{clientId}/subscription-quote.
func (s *Server) QuoteSubscription(c echo.Context) error {
	clientID, err := pathUUID(c, "clientId")
	if err != nil {
		return err
	}

	plan, err := subscription.ParsePlan(c.QueryParam("plan"))
	if err != nil {
		return err
	}
	months, err := requiredQueryInt(c, "periodMonths")
	if err != nil {
		return err
	}
	period, err := subscription.NewPeriod(months)
	if err != nil {
		return err
	}

	query, err := queries.NewQuoteSubscriptionQuery(clientID, plan, period, c.QueryParam("voucherCode"))
	if err != nil {
		return err
	}

	quote, err := s.h.QuoteSubscription.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, subscriptionQuoteResponse(quote))
}

// IssueSubscriptionInvoice handles POST /api/v1/clients/{clientId}/subscription-invoices.
func (s *Server) IssueSubscriptionInvoice(c echo.Context) error {
	clientID, err := pathUUID(c, "clientId")
	if err != nil {
		return err
	}

	var req SubscriptionInvoiceRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	plan, err := subscription.ParsePlan(req.Plan)
	if err != nil {
		return err
	}
	period, err := subscription.NewPeriod(req.PeriodMonths)
	if err != nil {
		return err
	}

	cmd, err := commands.NewIssueSubscriptionInvoiceCommand(clientID, plan, period, req.VoucherCode)
	if err != nil {
		return err
	}

	result, err := s.h.IssueSubscriptionInvoice.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	response := subscriptionQuoteResponse(result.Quote)
	response.InvoiceID = result.InvoiceID.String()
	return c.JSON(http.StatusCreated, response)
}
