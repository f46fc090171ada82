package maps

// Prediction is a candidate address suggestion returned to the form. Field
// names mirror the places API payload the frontend previously consumed
// directly.
type Prediction struct {
	PlaceID       string `json:"place_id"`
	Description   string `json:"description"`
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text,omitempty"`
}

// LookupResponse is the address-lookup payload. Predictions is always
// present (possibly empty); the suggestion panel shows when it is non-empty.
type LookupResponse struct {
	SessionID   string       `json:"sessionId"`
	Predictions []Prediction `json:"predictions"`
}

// SelectRequest closes out a suggestion session by picking one prediction.
type SelectRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	PlaceID   string `json:"placeId" binding:"required"`
}

// SelectResponse carries the full address text to write into the form field.
type SelectResponse struct {
	Address string `json:"address"`
}

// placesResponse mirrors the relevant parts of the autocomplete API payload.
type placesResponse struct {
	Status       string             `json:"status"`
	ErrorMessage string             `json:"error_message"`
	Predictions  []placesPrediction `json:"predictions"`
}

type placesPrediction struct {
	PlaceID              string `json:"place_id"`
	Description          string `json:"description"`
	StructuredFormatting struct {
		MainText      string `json:"main_text"`
		SecondaryText string `json:"secondary_text"`
	} `json:"structured_formatting"`
}
