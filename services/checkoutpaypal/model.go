package checkoutpaypal

import (
	"bytes"
	"encoding/json"
	"time"
)

// CapturedPayment is the audit record of a completed capture.
type CapturedPayment struct {
	OrderID    string
	CaptureID  string
	Status     string
	Amount     string
	Currency   string
	InvoiceID  string
	DebugID    string
	Mode       string
	CapturedAt time.Time
}

type createOrderRequest struct {
	Amount textValue `json:"amount" form:"amount"`
}

type captureOrderRequest struct {
	OrderID textValue `json:"orderId" form:"orderId"`
}

// textValue accepts a json string or number and keeps its text. Other json
// values leave it empty.
type textValue string

func (v *textValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		s := ""
		err := json.Unmarshal(data, &s)
		if err != nil {
			return err
		}
		*v = textValue(s)
		return nil
	}

	var n json.Number
	if json.Unmarshal(data, &n) == nil {
		*v = textValue(n.String())
		return nil
	}

	*v = ""
	return nil
}
