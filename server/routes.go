package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sundayschool/utils"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/assets", func(assets chi.Router) {
			//post methods
			assets.Post("/", srv.AssetHandler.CreateAsset)
			assets.Post("/export", srv.AssetHandler.ExportAssets)
			assets.Post("/{id}/assign", srv.AssetHandler.AssignAsset)
			assets.Post("/{id}/unassign", srv.AssetHandler.UnassignAsset)

			//put methods
			assets.Put("/{id}", srv.AssetHandler.UpdateAsset)

			//get methods
			assets.Get("/", srv.AssetHandler.ListAssets)
			assets.Get("/{id}", srv.AssetHandler.GetAsset)

			//delete methods
			assets.Delete("/{id}", srv.AssetHandler.DeleteAsset)
		})

		api.Route("/users", func(users chi.Router) {
			users.Post("/", srv.UserHandler.RegisterUser)
			users.Get("/", srv.UserHandler.GetUsersWithFilters)
			users.Delete("/{id}", srv.UserHandler.DeleteUser)
		})

		api.Get("/reports/{fileName}", srv.AssetHandler.DownloadReport)
	})

	return r
}
