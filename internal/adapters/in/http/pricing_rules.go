package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListPricingRules handles GET /api/v1/pricing-rules.
func (s *Server) ListPricingRules(c echo.Context) error {
	transportType := kernel.UnknownTransportType
	if raw := c.QueryParam("transportType"); raw != "" {
		var err error
		if transportType, err = kernel.ParseTransportType(raw); err != nil {
			return err
		}
	}
	includeInactive, err := queryBool(c, "includeInactive")
	if err != nil {
		return err
	}

	query, err := queries.NewListPricingRulesQuery(transportType, includeInactive)
	if err != nil {
		return err
	}

	views, err := s.h.ListPricingRules.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]PricingRuleResponse, 0, len(views))
	for _, v := range views {
		response = append(response, pricingRuleViewResponse(v))
	}
	return c.JSON(http.StatusOK, response)
}

// CreatePricingRule handles POST /api/v1/pricing-rules.
func (s *Server) CreatePricingRule(c echo.Context) error {
	var req PricingRuleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	params, err := req.params()
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreatePricingRuleCommand(kernel.NewUUID(), params)
	if err != nil {
		return err
	}

	rule, err := s.h.PricingRules.Create(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, pricingRuleResponse(rule))
}

// UpdatePricingRule handles PUT /api/v1/pricing-rules/{ruleId}. The body
// replaces every attribute; send isActive false to deactivate.
func (s *Server) UpdatePricingRule(c echo.Context) error {
	ruleID, err := pathUUID(c, "ruleId")
	if err != nil {
		return err
	}

	var req PricingRuleRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	params, err := req.params()
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdatePricingRuleCommand(ruleID, params)
	if err != nil {
		return err
	}

	rule, err := s.h.PricingRules.Update(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pricingRuleResponse(rule))
}

// DeletePricingRule handles DELETE /api/v1/pricing-rules/{ruleId}.
func (s *Server) DeletePricingRule(c echo.Context) error {
	ruleID, err := pathUUID(c, "ruleId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeletePricingRuleCommand(ruleID)
	if err != nil {
		return err
	}
	if err = s.h.PricingRules.Delete(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
