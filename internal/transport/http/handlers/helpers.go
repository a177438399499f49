package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

// pageFromQuery reads ?page=, defaulting to 1.
func pageFromQuery(r *http.Request) int {
	raw := strings.TrimSpace(r.URL.Query().Get("page"))
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func writeBadRequest(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusBadRequest, httperrors.APIError{Code: code, Message: message})
}

func writeUnauthorized(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusUnauthorized, httperrors.APIError{Code: code, Message: message})
}

func writeNotFound(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusNotFound, httperrors.APIError{Code: code, Message: message})
}

func writeInternal(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusInternalServerError, httperrors.APIError{Code: code, Message: message})
}

// writeBackendError relays a backend rejection; transport failures
// surface as 502 so the UI can tell "backend said no" from "backend is
// down".
func writeBackendError(w http.ResponseWriter, status int, message string) {
	if status == 0 {
		httperrors.Write(w, http.StatusBadGateway, httperrors.APIError{
			Code:    "BACKEND_UNREACHABLE",
			Message: "platform api is unreachable",
		})
		return
	}
	if message == "" {
		message = http.StatusText(status)
	}
	httperrors.Write(w, status, httperrors.APIError{Code: "BACKEND_ERROR", Message: message})
}

// backendStatus reports whether err came out of the backend client and,
// if so, the status and message to relay. Unreachable backends map to
// status 0, which writeBackendError turns into a 502.
func backendStatus(err error) (int, string, bool) {
	var reqErr *backendhttp.RequestError
	if !errors.As(err, &reqErr) {
		return 0, "", false
	}
	if backendhttp.IsUnreachable(err) {
		return 0, "", true
	}
	return reqErr.StatusCode, reqErr.Message, true
}

// writeRelayedError relays backend failures and hides everything else
// behind a generic 500 with the handler's fallback message.
func writeRelayedError(w http.ResponseWriter, err error, fallback string) {
	if status, message, ok := backendStatus(err); ok {
		writeBackendError(w, status, message)
		return
	}
	writeInternal(w, "INTERNAL_ERROR", fallback)
}
