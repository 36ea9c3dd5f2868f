package routehandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/lakonic/chequetext/extraction"
	"github.com/lakonic/chequetext/webutil"
)

// Holds dependencies for the text-extraction route handler.
type ExtractHandler struct {
	Extractor *extraction.Extractor
}

// Creates a new ExtractHandler.
func NewExtractHandler(extractor *extraction.Extractor) *ExtractHandler {
	return &ExtractHandler{Extractor: extractor}
}

// extractResponse is the success payload of POST /extract-text.
type extractResponse struct {
	Text   string             `json:"text"`
	Length int                `json:"length"`
	Links  extraction.LinkSet `json:"links"`
}

// HandleExtractText validates the request body and runs the extraction
// pipeline over the submitted HTML.
func (h *ExtractHandler) HandleExtractText(w http.ResponseWriter, r *http.Request) error {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return webutil.ErrBadRequestWrap("No JSON data provided", err)
	}
	if body == nil {
		return webutil.ErrBadRequest("No JSON data provided")
	}

	raw, present := body["html"]
	if !present {
		return webutil.ErrBadRequest("Missing 'html' field in request")
	}

	htmlContent, isString := raw.(string)
	if !isString || htmlContent == "" {
		return webutil.ErrBadRequest("Invalid 'html' field")
	}

	extractionID := uuid.NewString()
	slog.Info("Processing HTML content",
		"extraction_id", extractionID,
		"remote_addr", r.RemoteAddr,
		"input_length", utf8.RuneCountInString(htmlContent),
	)

	result, err := h.Extractor.Extract(htmlContent)
	if err != nil {
		// MakeHandler maps this to a 500 carrying the message text.
		return err
	}

	slog.Info("Successfully extracted text",
		"extraction_id", extractionID,
		"output_length", result.Length,
		"links", len(result.Links),
	)

	webutil.RespondWithJSON(w, http.StatusOK, extractResponse{
		Text:   result.Text,
		Length: result.Length,
		Links:  result.Links,
	})
	return nil
}
