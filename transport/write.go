package transport

import (
	"encoding/json"
	"net/http"

	"github.com/anindyaputri/dress-shop/constant"
	cerrors "github.com/anindyaputri/dress-shop/utils/errors"
)

type apiResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(apiResponse{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	custom, ok := err.(cerrors.CustomError)
	if !ok {
		custom = cerrors.SetCustomError(constant.ErrInternal)
	}

	w.WriteHeader(custom.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(apiResponse{
		Code:    custom.ErrorCode(),
		Message: custom.Error(),
	})
}
