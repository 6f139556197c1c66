package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/couchcryptid/aero-bulletin-etl/internal/domain"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var validate = validator.New()

// decodeRequest is the body of POST /api/v1/decode/{notam,taf}. ICAO is the
// fallback location when the text names none.
type decodeRequest struct {
	Raw    string `json:"raw" validate:"required,max=65536"`
	ICAO   string `json:"icao,omitempty" validate:"omitempty,len=4,alpha"`
	Source string `json:"source,omitempty" validate:"max=64"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleDecode answers with the decoded bulletin as JSON, or with the
// rendered text when called with ?format=text.
func (s *Server) handleDecode(kind domain.BulletinKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var req decodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		out, err := s.decoder.Decode(r.Context(), domain.RawBulletin{
			Kind:   kind,
			Raw:    req.Raw,
			Source: req.Source,
			ICAO:   req.ICAO,
		})
		if err != nil {
			status := decodeErrorStatus(err)
			if status == http.StatusInternalServerError {
				s.logger.Error("decode request failed", "kind", kind, "error", err)
			}
			writeJSON(w, status, errorResponse{Error: err.Error()})
			return
		}

		if strings.EqualFold(r.URL.Query().Get("format"), "text") {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(out.HumanReadable + "\n"))
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func decodeErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmptyInput),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNotNotam),
		errors.Is(err, domain.ErrUnknownKind):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // the status line is already sent
}
