package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/diegoclair/weekly-signup/internal/domain"
	"github.com/diegoclair/weekly-signup/internal/domain/contract"
)

// Plain-text body for server side failures; the cause is only logged
const ErrGeneric = "ERROR"

type SignupHandler struct {
	signupService contract.SignupService
}

func New(signupService contract.SignupService) *SignupHandler {
	return &SignupHandler{
		signupService: signupService,
	}
}

// HandleSignup serves /signup: POST stores a signup, GET returns the current bucket
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleSubmit(w, r)
	case http.MethodGet:
		h.handleList(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		respondText(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *SignupHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("name")
	status := r.PostFormValue("status")

	err := h.signupService.Submit(r.Context(), name, status)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			log.Printf("invalid post body: %s", vErr.Reason)
			respondText(w, http.StatusBadRequest, vErr.Reason)
			return
		}

		log.Printf("POST /signup error: %v", err)
		respondText(w, http.StatusInternalServerError, ErrGeneric)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SignupHandler) handleList(w http.ResponseWriter, r *http.Request) {
	view, err := h.signupService.List(r.Context())
	if err != nil {
		log.Printf("GET /signup error: %v", err)
		respondText(w, http.StatusInternalServerError, ErrGeneric)
		return
	}

	var response map[string]interface{}
	if view.Paused {
		response = map[string]interface{}{
			"paused":  true,
			"message": view.Message,
		}
	} else {
		signups := view.Signups
		if signups == nil {
			signups = map[string]string{}
		}
		response = map[string]interface{}{
			"paused":  false,
			"date":    view.Date,
			"signups": signups,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Error encoding signups: %v", err)
	}
}

// HandleHealth answers liveness probes
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondText(w, http.StatusOK, "OK")
}

func respondText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(message)); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
