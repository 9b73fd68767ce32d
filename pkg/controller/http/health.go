package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/psindex/pkg/domain/model"
	"github.com/m-mizutani/psindex/pkg/domain/types"
	"github.com/m-mizutani/psindex/pkg/utils/logging"
)

func healthHandler(repo *model.Repository) http.HandlerFunc {
	status := model.HealthStatus{
		Status:  "healthy",
		Service: types.ServiceName,
		Version: types.Version,
	}
	if repo != nil {
		status.Repository = repo.FullName()
		status.Branch = repo.Branch
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logging.From(r.Context()).Error("Failed to encode health response", "error", err)
		}
	}
}
