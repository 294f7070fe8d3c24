// Package wallet exposes the transaction and balance routes. Every route
// here sits behind the bearer-token middleware.
package wallet

import (
	"errors"

	"github.com/Elias-Manica/My-wallet-back/pkg/domain/transaction"
	userdomain "github.com/Elias-Manica/My-wallet-back/pkg/domain/user"
	"github.com/Elias-Manica/My-wallet-back/pkg/middleware"
	authsvc "github.com/Elias-Manica/My-wallet-back/pkg/service/auth"
	walletsvc "github.com/Elias-Manica/My-wallet-back/pkg/service/wallet"
	"github.com/Elias-Manica/My-wallet-back/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the protected wallet endpoints.
func Routes(app *fiber.App, svc *walletsvc.Service, authSvc *authsvc.Service) {
	protected := middleware.TokenProtected(authSvc)
	app.Post("/transition", protected, CreateTransition(svc))
	app.Get("/transition", protected, ListTransitions(svc))
	app.Put("/transition", protected, UpdateTransition(svc))
	app.Delete("/transition", protected, DeleteTransition(svc))
	app.Get("/balance", protected, GetBalance(svc))
}

// CreateTransition records a deposit or withdrawal for the caller.
// @Summary Create a transaction
// @Description Record a deposit or withdrawal and adjust the running balance
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body CreateTransitionRequest true "Transaction data"
// @Success 201 {object} TransitionResponse
// @Failure 401 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Failure 422 {array} string
// @Router /transition [post]
// @Security Bearer
func CreateTransition(svc *walletsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateTransitionRequest
		if err := c.BodyParser(&req); err != nil {
			return common.ValidationJSON(c, []string{"invalid request body"})
		}
		value, kind, msgs := req.Validate()
		if msgs != nil {
			return common.ValidationJSON(c, msgs)
		}
		userID := c.Locals(middleware.UserIDKey).(uuid.UUID)
		created, err := svc.Create(c.Context(), userID, value, req.Description, kind)
		if err != nil {
			return common.MessageJSON(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(TransitionResponse{
			Value:       created.Signed(),
			Description: created.Description,
			Type:        string(created.Kind),
			Date:        created.CreatedAt.Format(transaction.DateLayout),
		})
	}
}

// ListTransitions returns the caller's transactions, newest first.
// @Summary List transactions
// @Description List the caller's transactions, newest first
// @Tags wallet
// @Produce json
// @Success 200 {array} TransitionListItem
// @Failure 401 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /transition [get]
// @Security Bearer
func ListTransitions(svc *walletsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals(middleware.UserIDKey).(uuid.UUID)
		txs, err := svc.List(c.Context(), userID)
		if err != nil {
			return common.MessageJSON(c, fiber.StatusInternalServerError, "internal server error")
		}
		items := make([]TransitionListItem, 0, len(txs))
		for _, tx := range txs {
			items = append(items, toListItem(tx))
		}
		return c.Status(fiber.StatusOK).JSON(items)
	}
}

// UpdateTransition edits a transaction's value and description.
// @Summary Update a transaction
// @Description Edit a transaction's value and description; the balance is corrected by the difference
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body UpdateTransitionRequest true "Update data"
// @Success 200 {object} common.MessageResponse
// @Failure 401 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Failure 422 {array} string
// @Router /transition [put]
// @Security Bearer
func UpdateTransition(svc *walletsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req UpdateTransitionRequest
		if err := c.BodyParser(&req); err != nil {
			return common.ValidationJSON(c, []string{"invalid request body"})
		}
		if req.ID == "" {
			return common.MessageJSON(c, fiber.StatusNotFound, "id is required")
		}
		value, msgs := req.Validate()
		if msgs != nil {
			return common.ValidationJSON(c, msgs)
		}
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return common.MessageJSON(c, fiber.StatusNotFound, transaction.ErrTransactionNotFound.Error())
		}
		err = svc.Update(c.Context(), id, value, req.Description)
		switch {
		case err == nil:
			return common.MessageJSON(c, fiber.StatusOK, "transaction updated")
		case errors.Is(err, transaction.ErrTransactionNotFound):
			return common.MessageJSON(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, transaction.ErrValueNotPositive):
			return common.ValidationJSON(c, []string{err.Error()})
		default:
			return common.MessageJSON(c, fiber.StatusInternalServerError, "internal server error")
		}
	}
}

// DeleteTransition removes a transaction and reverses its balance effect.
// @Summary Delete a transaction
// @Description Remove a transaction; its signed effect is taken back out of the balance
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body DeleteTransitionRequest true "Transaction id"
// @Success 200 {object} common.MessageResponse
// @Failure 401 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /transition [delete]
// @Security Bearer
func DeleteTransition(svc *walletsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req DeleteTransitionRequest
		if err := c.BodyParser(&req); err != nil {
			return common.MessageJSON(c, fiber.StatusNotFound, "id is required")
		}
		if req.ID == "" {
			return common.MessageJSON(c, fiber.StatusNotFound, "id is required")
		}
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return common.MessageJSON(c, fiber.StatusNotFound, transaction.ErrTransactionNotFound.Error())
		}
		err = svc.Delete(c.Context(), id)
		switch {
		case err == nil:
			return common.MessageJSON(c, fiber.StatusOK, "transaction deleted")
		case errors.Is(err, transaction.ErrTransactionNotFound):
			return common.MessageJSON(c, fiber.StatusNotFound, err.Error())
		default:
			return common.MessageJSON(c, fiber.StatusInternalServerError, "internal server error")
		}
	}
}

// GetBalance returns the caller's running balance.
// @Summary Get balance
// @Description Return the caller's name, email and running balance
// @Tags wallet
// @Produce json
// @Success 200 {object} BalanceResponse
// @Failure 401 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /balance [get]
// @Security Bearer
func GetBalance(svc *walletsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals(middleware.UserIDKey).(uuid.UUID)
		read, err := svc.Balance(c.Context(), userID)
		switch {
		case err == nil:
			return c.Status(fiber.StatusOK).JSON(BalanceResponse{
				Name:    read.Name,
				Email:   read.Email,
				Balance: read.Balance,
			})
		case errors.Is(err, userdomain.ErrUserNotFound):
			return common.MessageJSON(c, fiber.StatusNotFound, err.Error())
		default:
			return common.MessageJSON(c, fiber.StatusInternalServerError, "internal server error")
		}
	}
}
