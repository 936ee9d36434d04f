package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type UploadsHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewUploadsHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *UploadsHandler {
	return &UploadsHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// image перенаправляет на хранилище изображений.
func (u *UploadsHandler) image(w http.ResponseWriter, r *http.Request) {
	url, err := u.catalogUsecase.ImageURL(r.Context(), chi.URLParam(r, "filename"))
	if err != nil {
		u.logger.Debugf("image lookup failed: %v", err)
		WriteError(w, err)
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}
