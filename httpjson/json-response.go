package httpjson

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/programme-lv/leaderboard/srvcerror"
)

type JsonResponse struct {
	Status  string `json:"status"` // "success" or "error"
	Data    any    `json:"data,omitempty"`
	ErrCode string `json:"code,omitempty"`
	ErrMsg  string `json:"message,omitempty"`
}

func WriteSuccessJson(w http.ResponseWriter, data any) {
	writeJson(w, http.StatusOK, JsonResponse{
		Status: "success",
		Data:   data,
	})
}

func WriteErrorJson(w http.ResponseWriter, errMsg string, statusCode int, errCode string) {
	writeJson(w, statusCode, JsonResponse{
		Status:  "error",
		ErrMsg:  errMsg,
		ErrCode: errCode,
	})
}

func writeJson(w http.ResponseWriter, statusCode int, resp JsonResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Warn("failed to encode json response", "error", err)
	}
}

// HandleError writes err as a json error envelope. Service errors keep their
// code and status, anything else becomes a 500 without details.
func HandleError(logger *slog.Logger, w http.ResponseWriter, err error) {
	srvcErr := &srvcerror.Error{}
	if !errors.As(err, &srvcErr) {
		logger.Error("internal server error", "error", err)
		ise := srvcerror.ErrInternalSE()
		WriteErrorJson(w, ise.Error(), ise.HttpStatusCode(), ise.ErrorCode())
		return
	}

	if srvcErr.HttpStatusCode() >= http.StatusInternalServerError {
		logger.Error("server side failure", "error", srvcErr)
	} else {
		logger.Warn("service error", "error", srvcErr)
	}
	WriteErrorJson(w, srvcErr.Error(), srvcErr.HttpStatusCode(), srvcErr.ErrorCode())
}
