package bill

import (
	"time"

	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/bill"
)

type fixedBillResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Amount      int64     `json:"amount"`
	Category    string    `json:"category"`
	DueDay      int       `json:"due_day"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func toFixedResponse(fb *bill.FixedBill) fixedBillResponse {
	return fixedBillResponse{
		ID:          fb.ID,
		Title:       fb.Title,
		Amount:      fb.Amount,
		Category:    fb.Category,
		DueDay:      fb.DueDay,
		Description: fb.Description,
		IsActive:    fb.IsActive,
		CreatedAt:   fb.CreatedAt,
	}
}

func toFixedResponseList(fbs []*bill.FixedBill) []fixedBillResponse {
	resp := make([]fixedBillResponse, len(fbs))
	for i, fb := range fbs {
		resp[i] = toFixedResponse(fb)
	}

	return resp
}

type monthlyBillResponse struct {
	ID          uuid.UUID   `json:"id"`
	FixedBillID uuid.UUID   `json:"fixed_bill_id"`
	Title       string      `json:"title"`
	Amount      int64       `json:"amount"`
	DueDate     string      `json:"due_date"`
	Status      bill.Status `json:"status"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category"`
}

func toMonthlyResponse(mb *bill.MonthlyBill) monthlyBillResponse {
	return monthlyBillResponse{
		ID:          mb.ID,
		FixedBillID: mb.FixedBillID,
		Title:       mb.Title,
		Amount:      mb.Amount,
		DueDate:     mb.DueDate.Format(time.DateOnly),
		Status:      mb.Status,
		Description: mb.Description,
		Category:    mb.Category,
	}
}

func toMonthlyResponseList(mbs []*bill.MonthlyBill) []monthlyBillResponse {
	resp := make([]monthlyBillResponse, len(mbs))
	for i, mb := range mbs {
		resp[i] = toMonthlyResponse(mb)
	}

	return resp
}
