package sheets

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"shoplink/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{Client: client}
}

// Preview runs the import adapter against a sheet URL and returns the parsed
// drafts without persisting anything. The wizard uses this for its review
// step before the store is created.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		SheetURL string `json:"sheetUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if payload.SheetURL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "sheetUrl is required")
		return
	}

	drafts, err := h.Client.FetchProducts(r.Context(), payload.SheetURL)
	if err != nil {
		log.Println("sheet preview error:", err)
		switch {
		case errors.Is(err, ErrInvalidSheetURL):
			utils.RespondWithError(w, http.StatusBadRequest, "That does not look like a Google Sheet link. Copy the full share URL.")
		case errors.Is(err, ErrSheetParse):
			utils.RespondWithError(w, http.StatusBadRequest, "Could not read the sheet. Check sharing settings and that columns are Name, Price, Description, Image.")
		default:
			utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch sheet data")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":       true,
		"products": drafts,
	})
}
