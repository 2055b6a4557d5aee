package model

const (
	EntityName = "customer"
)

type Customer struct {
	ID   int64  `json:"customer_id"`
	Name string `json:"name"`
}
