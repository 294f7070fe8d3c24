package wallet

import (
	"strconv"

	"github.com/Elias-Manica/My-wallet-back/pkg/domain/transaction"
	"github.com/Elias-Manica/My-wallet-back/pkg/dto"
	"github.com/Elias-Manica/My-wallet-back/pkg/utils"
)

// CreateTransitionRequest is the payload for POST /transition. Value is
// typed any so a non-numeric value fails validation with a field message
// instead of a body-parse error.
type CreateTransitionRequest struct {
	Value       any    `json:"value"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Validate checks all fields, collecting one message per problem. On
// success it returns the parsed value and kind.
func (r *CreateTransitionRequest) Validate() (float64, transaction.Kind, []string) {
	var msgs []string
	value, msgs := validateValue(r.Value, msgs)
	msgs = validateDescription(r.Description, msgs)
	kind, err := transaction.ParseKind(r.Type)
	if err != nil {
		msgs = append(msgs, err.Error())
	}
	return value, kind, msgs
}

// UpdateTransitionRequest is the payload for PUT /transition. The
// transaction to edit is addressed by the id field; type is not editable.
type UpdateTransitionRequest struct {
	ID          string `json:"id"`
	Value       any    `json:"value"`
	Description string `json:"description"`
}

// Validate checks the editable fields. The id is checked separately by the
// handler because a missing id is a 404, not a 422.
func (r *UpdateTransitionRequest) Validate() (float64, []string) {
	var msgs []string
	value, msgs := validateValue(r.Value, msgs)
	msgs = validateDescription(r.Description, msgs)
	return value, msgs
}

func validateValue(raw any, msgs []string) (float64, []string) {
	switch v := raw.(type) {
	case nil:
		return 0, append(msgs, "value is required")
	case float64:
		if err := transaction.ValidateValue(v); err != nil {
			return 0, append(msgs, err.Error())
		}
		return v, msgs
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, append(msgs, "value must be a number")
		}
		if err := transaction.ValidateValue(parsed); err != nil {
			return 0, append(msgs, err.Error())
		}
		return parsed, msgs
	default:
		return 0, append(msgs, "value must be a number")
	}
}

func validateDescription(description string, msgs []string) []string {
	if !utils.HasAlphanumeric(description) {
		return append(msgs, transaction.ErrDescriptionEmpty.Error())
	}
	return msgs
}

// DeleteTransitionRequest is the payload for DELETE /transition.
type DeleteTransitionRequest struct {
	ID string `json:"id"`
}

// TransitionResponse echoes a freshly created transaction. Value carries
// the sign of the movement; withdrawals come back negative.
type TransitionResponse struct {
	Value       float64 `json:"value"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
}

// TransitionListItem is one entry of the GET /transition reply. Unlike the
// create echo, the listed value is the stored magnitude.
type TransitionListItem struct {
	ID          string  `json:"id"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
}

// BalanceResponse is the GET /balance reply. The EmailUser key is part of
// the API's historical contract.
type BalanceResponse struct {
	Name    string  `json:"name"`
	Email   string  `json:"EmailUser"`
	Balance float64 `json:"balance"`
}

func toListItem(read *dto.TransactionRead) TransitionListItem {
	return TransitionListItem{
		ID:          read.ID.String(),
		Value:       read.Value,
		Description: read.Description,
		Type:        string(read.Kind),
		Date:        read.CreatedAt.Format(transaction.DateLayout),
	}
}
