package dto

import "time"

type BookingListDTO struct {
	ID           uint      `json:"id"`
	Reference    string    `json:"reference"`
	Date         time.Time `json:"date"`
	StartTime    float64   `json:"start_time"`
	EndTime      float64   `json:"end_time"`
	State        string    `json:"state"`
	TotalPrice   float64   `json:"total_price"`
	CustomerName string    `json:"customer_name"`
	FieldName    string    `json:"field_name"`
	FieldCode    string    `json:"field_code"`
}
