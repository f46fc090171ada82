package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"chimney_site_backend/platform/logger"
)

const defaultAutocompleteURL = "https://maps.googleapis.com/maps/api/place/autocomplete/json"

// Client queries the places autocomplete API. Requests within one form
// interaction share a session token so the upstream bills them as a single
// autocomplete session.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	country    string
	log        *logger.Logger
}

func NewClient(apiKey, country string, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    defaultAutocompleteURL,
		apiKey:     apiKey,
		country:    country,
		log:        log,
	}
}

// Predictions fetches address predictions for the given input. A
// ZERO_RESULTS status is not an error; it yields an empty list.
func (c *Client) Predictions(ctx context.Context, input, sessionToken string) ([]Prediction, error) {
	params := url.Values{}
	params.Add("input", input)
	params.Add("key", c.apiKey)
	params.Add("sessiontoken", sessionToken)
	params.Add("types", "address")
	params.Add("components", "country:"+c.country)

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("places request failed", "error", err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("places upstream error", "status", resp.StatusCode)
		return nil, fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	var raw placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.log.Error("failed to decode places payload", "error", err)
		return nil, err
	}

	switch raw.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []Prediction{}, nil
	default:
		c.log.Error("places status error", "status", raw.Status, "message", raw.ErrorMessage)
		return nil, fmt.Errorf("places status: %s", raw.Status)
	}

	predictions := make([]Prediction, 0, len(raw.Predictions))
	for _, p := range raw.Predictions {
		predictions = append(predictions, Prediction{
			PlaceID:       p.PlaceID,
			Description:   p.Description,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		})
	}

	return predictions, nil
}
