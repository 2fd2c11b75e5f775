package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const OrderSchemaTextV1 = `{
	"type": "record",
	"namespace": "shopping",
	"name": "order",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "session_id", "type": "string"},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "order_item",
				"fields": [
					{"name": "product_id", "type": "long"},
					{"name": "name", "type": "string"},
					{"name": "category", "type": "string"},
					{"name": "price", "type": "long"},
					{"name": "quantity", "type": "long"}
				]
			}
		}},
		{"name": "total", "type": "long"},
		{"name": "date", "type": "string"},
		{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type (
	OrderV1 struct {
		OrderID   string        `avro:"order_id"`
		SessionID string        `avro:"session_id"`
		Items     []OrderItemV1 `avro:"items"`
		Total     int64         `avro:"total"`
		Date      string        `avro:"date"`
		CreatedAt time.Time     `avro:"created_at"`
	}

	OrderItemV1 struct {
		ProductID int64  `avro:"product_id"`
		Name      string `avro:"name"`
		Category  string `avro:"category"`
		Price     int64  `avro:"price"`
		Quantity  int64  `avro:"quantity"`
	}
)

// OrderV1Avro panics if [OrderSchemaTextV1] is not a valid schema.
func OrderV1Avro() avro.Schema {
	return avro.MustParse(OrderSchemaTextV1)
}
