package respond

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger()

// SetLogger routes encode-failure logs through the application logger.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("respond: encode payload failed")
	}
}

// Error writes a `{"message": ...}` body, the error shape every route
// boundary converts failures into.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}
