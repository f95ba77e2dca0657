package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jameszjgao/vouchap-crm/internal/health"
	"github.com/jameszjgao/vouchap-crm/internal/http/handler"
	"github.com/jameszjgao/vouchap-crm/internal/http/middleware"
	"github.com/jameszjgao/vouchap-crm/internal/http/response"
	"github.com/jameszjgao/vouchap-crm/internal/menu"
	"github.com/jameszjgao/vouchap-crm/internal/security"
)

type Dependencies struct {
	AuthHandler      *handler.AuthHandler
	MenuHandler      *handler.MenuHandler
	OverviewHandler  *handler.OverviewHandler
	RoleAdminHandler *handler.RoleAdminHandler
	CustomerHandler  *handler.CustomerHandler
	OrderHandler     *handler.OrderHandler
	SkuHandler       *handler.SkuHandler
	TeamHandler      *handler.TeamHandler
	JWTManager       *security.JWTManager
	Sessions         middleware.SessionSource
	Readiness        *health.ProbeRunner
	CORSOrigins      []string
	EnableOTelHTTP   bool
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredRequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(dep.CORSOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		ready, results := dep.Readiness.Ready(r.Context())
		if ready {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": results})
			return
		}
		response.Error(w, r, http.StatusServiceUnavailable, "DEPENDENCY_UNREADY",
			"dependencies are not ready", map[string]any{"checks": results})
	})

	auth := middleware.AuthMiddleware(dep.JWTManager)
	requireKey := func(key menu.Key) func(http.Handler) http.Handler {
		return middleware.RequireMenuKey(dep.Sessions, key)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", dep.AuthHandler.Login)
		r.With(auth).Post("/auth/logout", dep.AuthHandler.Logout)
		r.With(auth).Get("/me", dep.AuthHandler.Me)

		r.With(auth).Get("/menu", dep.MenuHandler.Mine)
		r.With(auth).Get("/menu/catalog", dep.MenuHandler.Catalog)

		r.Route("/overview", func(r chi.Router) {
			r.Use(auth)
			r.With(requireKey(menu.OverviewPanorama)).Get("/panorama", dep.OverviewHandler.Panorama)
			r.With(requireKey(menu.OverviewMy)).Get("/my", dep.OverviewHandler.Mine)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Use(auth)
			r.With(requireKey(menu.CustomersAll)).Get("/", dep.CustomerHandler.ListAll)
			r.With(requireKey(menu.CustomersMy)).Get("/my", dep.CustomerHandler.ListMine)
			r.With(requireKey(menu.CustomersMy)).Post("/{id}/follow-ups", dep.CustomerHandler.AddFollowUp)
			r.Group(func(r chi.Router) {
				r.Use(requireKey(menu.CustomersAll))
				r.Put("/{id}/assignment", dep.CustomerHandler.Assign)
				r.Delete("/{id}/assignment", dep.CustomerHandler.Unassign)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(auth)
			r.With(requireKey(menu.OrdersMy)).Get("/my", dep.OrderHandler.ListMine)
			r.Group(func(r chi.Router) {
				r.Use(requireKey(menu.OrdersAll))
				r.Get("/", dep.OrderHandler.ListAll)
				r.Post("/", dep.OrderHandler.Create)
				r.Patch("/{id}/status", dep.OrderHandler.UpdateStatus)
				r.Delete("/{id}", dep.OrderHandler.Delete)
			})
		})

		r.Route("/skus", func(r chi.Router) {
			r.Use(auth)
			r.Group(func(r chi.Router) {
				r.Use(requireKey(menu.SkuEdition))
				r.Get("/editions", dep.SkuHandler.ListEditions)
				r.Post("/editions", dep.SkuHandler.CreateEdition)
				r.Patch("/editions/{id}", dep.SkuHandler.UpdateEdition)
				r.Delete("/editions/{id}", dep.SkuHandler.DeleteEdition)
			})
			r.Group(func(r chi.Router) {
				r.Use(requireKey(menu.SkuAddon))
				r.Get("/addons", dep.SkuHandler.ListAddons)
				r.Post("/addons", dep.SkuHandler.CreateAddon)
				r.Patch("/addons/{id}", dep.SkuHandler.UpdateAddon)
				r.Delete("/addons/{id}", dep.SkuHandler.DeleteAddon)
			})
		})

		r.Route("/team", func(r chi.Router) {
			r.Use(auth)
			r.Use(requireKey(menu.TeamMembers))
			r.Get("/", dep.TeamHandler.List)
			r.Post("/", dep.TeamHandler.Invite)
			r.Patch("/{id}/role", dep.TeamHandler.ChangeRole)
			r.Delete("/{id}", dep.TeamHandler.Remove)
			r.Post("/sync", dep.TeamHandler.SyncSelf)
			r.Post("/{id}/sync", dep.TeamHandler.SyncMember)
			r.Post("/sync-all", dep.TeamHandler.SyncAll)
		})

		r.Route("/admin/roles", func(r chi.Router) {
			r.Use(auth)
			r.Use(requireKey(menu.RolesPermissions))
			r.Get("/", dep.RoleAdminHandler.List)
			r.Post("/", dep.RoleAdminHandler.AddRole)
			r.Put("/{role}/permissions", dep.RoleAdminHandler.Save)
			r.Post("/{role}/move", dep.RoleAdminHandler.MoveRole)
			r.Put("/{role}/label", dep.RoleAdminHandler.SetLabel)
		})
	})

	if dep.EnableOTelHTTP {
		return otelhttp.NewHandler(r, "http.server")
	}
	return r
}
