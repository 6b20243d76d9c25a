package offerings

import (
	"fmt"
	"net/http"
)

// Offering is a priced product the front-end may charge for. Amount is the
// exact string a client has to send.
type Offering struct {
	Amount      string `yaml:"amount"`
	BaseAmount  string `yaml:"baseAmount"`
	Fee         string `yaml:"fee"`
	Description string `yaml:"description"`
}

type InvalidAmountError struct {
	Amount string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("amount '%s' is not an offered price", e.Amount)
}

func (e *InvalidAmountError) GetHTTPErrorCode() int {
	return http.StatusBadRequest
}

func (e *InvalidAmountError) ErrorTitle() string {
	return "Invalid payment amount"
}

func (e *InvalidAmountError) ErrorMessage() string {
	return e.Error()
}
