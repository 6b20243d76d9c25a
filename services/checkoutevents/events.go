package checkoutevents

const (
	TopicName         = "checkout"
	orderCreatedName  = TopicName + ".created"
	orderCapturedName = TopicName + ".captured"
)

type OrderCreated struct {
	OrderID   string
	Amount    string
	Currency  string
	InvoiceID string
	Mode      string
}

func (e OrderCreated) GetEventTypeName() string {
	return orderCreatedName
}

func (e OrderCreated) GetAggregateName() string {
	return e.OrderID
}

type OrderCaptured struct {
	OrderID   string
	CaptureID string
	Status    string
	Amount    string
	Currency  string
	InvoiceID string
	Mode      string
}

func (e OrderCaptured) GetEventTypeName() string {
	return orderCapturedName
}

func (e OrderCaptured) GetAggregateName() string {
	return e.OrderID
}
