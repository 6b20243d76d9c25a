package paypal

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MarcGrol/paypalrelay/lib/myhttpclient"
	"github.com/MarcGrol/paypalrelay/lib/myuuid"
)

//go:generate mockgen -source=client.go -package paypal -destination client_mock.go Client
type Client interface {
	GetAccessToken(c context.Context, credentials Credentials) (AccessToken, error)
	CreateOrder(c context.Context, apiBase string, token AccessToken, req CreateOrderRequest) (Response, error)
	CaptureOrder(c context.Context, apiBase string, token AccessToken, orderID string) (Response, error)
}

type client struct {
	sender myhttpclient.HTTPSender
	uuider myuuid.UUIDer
}

func NewClient(sender myhttpclient.HTTPSender, uuider myuuid.UUIDer) Client {
	return &client{
		sender: sender,
		uuider: uuider,
	}
}

func (cl *client) GetAccessToken(c context.Context, credentials Credentials) (AccessToken, error) {
	auth := base64.StdEncoding.EncodeToString([]byte(credentials.ClientID + ":" + credentials.Secret))

	resp, err := cl.sender.Send(c, myhttpclient.Request{
		Method:      http.MethodPost,
		URL:         credentials.APIBase + "/v1/oauth2/token",
		ContentType: "application/x-www-form-urlencoded",
		Headers:     map[string]string{"Authorization": "Basic " + auth},
		Body:        []byte(url.Values{"grant_type": {grantClientCredential}}.Encode()),
	})
	if err != nil {
		return AccessToken{}, fmt.Errorf("error calling token endpoint: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return AccessToken{}, &UpstreamAuthError{
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
			Reason:     fmt.Sprintf("unexpected http status %d", resp.StatusCode),
		}
	}

	token := tokenResponse{}
	err = json.Unmarshal(resp.Body, &token)
	if err != nil || token.AccessToken == "" {
		return AccessToken{}, &UpstreamAuthError{
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
			Reason:     "response holds no access token",
		}
	}

	return AccessToken{
		Value:     token.AccessToken,
		TokenType: token.TokenType,
		ExpiresIn: token.ExpiresIn,
	}, nil
}

func (cl *client) CreateOrder(c context.Context, apiBase string, token AccessToken, req CreateOrderRequest) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("error encoding create-order request: %w", err)
	}

	return cl.send(c, token, apiBase+"/v2/checkout/orders", body)
}

func (cl *client) CaptureOrder(c context.Context, apiBase string, token AccessToken, orderID string) (Response, error) {
	return cl.send(c, token, apiBase+"/v2/checkout/orders/"+url.PathEscape(orderID)+"/capture", nil)
}

func (cl *client) send(c context.Context, token AccessToken, endpoint string, body []byte) (Response, error) {
	resp, err := cl.sender.Send(c, myhttpclient.Request{
		Method: http.MethodPost,
		URL:    endpoint,
		Headers: map[string]string{
			"Authorization": "Bearer " + token.Value,
			// PayPal treats a retried request with the same id as the same operation
			requestIDHeader: cl.uuider.Create(),
		},
		Body: body,
	})
	if err != nil {
		return Response{}, err
	}

	if !json.Valid(resp.Body) {
		return Response{}, fmt.Errorf("paypal answered %s with non-json body (status %d)", endpoint, resp.StatusCode)
	}

	return Response{
		StatusCode: resp.StatusCode,
		DebugID:    resp.Header.Get(debugIDHeader),
		Body:       json.RawMessage(resp.Body),
	}, nil
}
